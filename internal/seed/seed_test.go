package seed

import (
	"context"
	"testing"

	"staffhub/internal/domain/directory"
	"staffhub/internal/domain/leave"
	"staffhub/internal/domain/payroll"
	"staffhub/internal/platform/identifier"
	"staffhub/internal/platform/kv"
)

func TestRunPopulatesEmptyStore(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	if err := Run(ctx, store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	dir := directory.NewDirectory(store, identifier.NewUUID())
	if err := dir.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if dir.Count() != 4 {
		t.Fatalf("expected 4 seeded employees, got %d", dir.Count())
	}

	registry := leave.NewRegistry(store, identifier.NewUUID())
	if err := registry.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	stats := leave.Aggregate(registry.List())
	if stats.Total != 4 || stats.Pending != 1 || stats.Approved != 2 || stats.Rejected != 1 {
		t.Fatalf("unexpected seeded leave stats: %+v", stats)
	}

	ledger := payroll.NewLedger(store, identifier.NewUUID())
	if err := ledger.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if ledger.Count() != 4 || len(ledger.Slips()) != 1 {
		t.Fatalf("unexpected seeded payroll data: %d records, %d slips", ledger.Count(), len(ledger.Slips()))
	}
}

func TestRunNeverClobbersExistingData(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	dir := directory.NewDirectory(store, identifier.NewSequence(1))
	emp := directory.Employee{
		Name:       "Only One",
		Email:      "only.one@company.com",
		Position:   "Founder",
		Department: "Leadership",
		Status:     directory.StatusActive,
		Salary:     100000,
		JoinDate:   "2020-01-01",
		Phone:      "+1 (555) 000-0000",
		Address:    "1 First St",
		EmergencyContact: directory.EmergencyContact{
			Name: "Someone", Phone: "+1 (555) 000-0001", Relationship: "Friend",
		},
	}
	if _, err := dir.Create(ctx, emp); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := Run(ctx, store); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	check := directory.NewDirectory(store, identifier.NewUUID())
	if err := check.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if check.Count() != 1 {
		t.Fatalf("seed must not overwrite existing data, got %d employees", check.Count())
	}
}

func TestSeededSlipTotalsAreDerived(t *testing.T) {
	slips := demoSalarySlips()
	for _, slip := range slips {
		totals := payroll.ComputeSlipTotals(slip)
		if slip.GrossSalary != totals.GrossSalary ||
			slip.TotalDeductions != totals.TotalDeductions ||
			slip.NetSalary != totals.NetSalary {
			t.Fatalf("seeded slip %s totals drift from derivation: %+v", slip.ID, slip)
		}
	}
}
