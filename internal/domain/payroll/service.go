// Package payroll owns payroll records and generated salary slips. Every
// stored total goes through the derivation in calc.go so the itemized
// fields and the totals cannot drift apart.
package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"staffhub/internal/platform/identifier"
	"staffhub/internal/platform/kv"
	"staffhub/internal/platform/validate"
)

type Ledger struct {
	store kv.Store
	newID identifier.Generator

	mu      sync.RWMutex
	records []PayrollRecord
	slips   []SalarySlip
}

func NewLedger(store kv.Store, newID identifier.Generator) *Ledger {
	return &Ledger{store: store, newID: newID}
}

// Restore loads the last persisted records and slips.
func (l *Ledger) Restore(ctx context.Context) error {
	if err := l.restoreInto(ctx, kv.KeyPayrollRecords, &l.records); err != nil {
		return fmt.Errorf("load payroll records: %w", err)
	}
	if err := l.restoreInto(ctx, kv.KeySalarySlips, &l.slips); err != nil {
		return fmt.Errorf("load salary slips: %w", err)
	}
	return nil
}

func (l *Ledger) restoreInto(ctx context.Context, key string, target any) error {
	raw, err := l.store.Load(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return json.Unmarshal(raw, target)
}

func (l *Ledger) Records() []PayrollRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]PayrollRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) Slips() []SalarySlip {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]SalarySlip, len(l.slips))
	copy(out, l.slips)
	return out
}

func (l *Ledger) Slip(id string) (SalarySlip, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, slip := range l.slips {
		if slip.ID == id {
			return slip, nil
		}
	}
	return SalarySlip{}, ErrSlipNotFound
}

// SlipFor resolves the slip for one employee and period.
func (l *Ledger) SlipFor(employeeID, month string, year int) (SalarySlip, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, slip := range l.slips {
		if slip.EmployeeID == employeeID && slip.Month == month && slip.Year == year {
			return slip, nil
		}
	}
	return SalarySlip{}, ErrSlipNotFound
}

func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// AddRecord validates and stores a payroll record. The net salary is always
// recomputed from basic, allowances, and deductions.
func (l *Ledger) AddRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error) {
	if err := validate.Struct(record); err != nil {
		return PayrollRecord{}, err
	}
	record.NetSalary = ComputeNet(record)

	l.mu.Lock()
	if record.ID == "" {
		record.ID = l.newID()
	} else if l.recordIndex(record.ID) >= 0 {
		l.mu.Unlock()
		return PayrollRecord{}, ErrDuplicateID
	}
	l.records = append(l.records, record)
	l.mu.Unlock()

	if err := l.persistRecords(ctx); err != nil {
		return PayrollRecord{}, err
	}
	return record, nil
}

// GenerateSlip validates the itemized fields and stores the slip with its
// totals freshly derived.
func (l *Ledger) GenerateSlip(ctx context.Context, slip SalarySlip) (SalarySlip, error) {
	if err := validate.Struct(slip); err != nil {
		return SalarySlip{}, err
	}

	totals := ComputeSlipTotals(slip)
	slip.GrossSalary = totals.GrossSalary
	slip.TotalDeductions = totals.TotalDeductions
	slip.NetSalary = totals.NetSalary

	l.mu.Lock()
	if slip.ID == "" {
		slip.ID = l.newID()
	} else if l.slipIndex(slip.ID) >= 0 {
		l.mu.Unlock()
		return SalarySlip{}, ErrDuplicateID
	}
	l.slips = append(l.slips, slip)
	l.mu.Unlock()

	if err := l.persistSlips(ctx); err != nil {
		return SalarySlip{}, err
	}
	return slip, nil
}

func (l *Ledger) recordIndex(id string) int {
	for i, record := range l.records {
		if record.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) slipIndex(id string) int {
	for i, slip := range l.slips {
		if slip.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) persistRecords(ctx context.Context) error {
	l.mu.RLock()
	raw, err := json.Marshal(l.records)
	l.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode payroll records: %w", err)
	}
	if err := l.store.Save(ctx, kv.KeyPayrollRecords, raw); err != nil {
		return fmt.Errorf("persist payroll records: %w", err)
	}
	return nil
}

func (l *Ledger) persistSlips(ctx context.Context) error {
	l.mu.RLock()
	raw, err := json.Marshal(l.slips)
	l.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode salary slips: %w", err)
	}
	if err := l.store.Save(ctx, kv.KeySalarySlips, raw); err != nil {
		return fmt.Errorf("persist salary slips: %w", err)
	}
	return nil
}

// Search returns the records matching the query and status filter. The
// query is a case-insensitive substring match against the employee name.
func Search(records []PayrollRecord, query, status string) []PayrollRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]PayrollRecord, 0, len(records))
	for _, record := range records {
		if query != "" && !strings.Contains(strings.ToLower(record.EmployeeName), query) {
			continue
		}
		if status != "" && status != FilterAll && status != record.Status {
			continue
		}
		out = append(out, record)
	}
	return out
}

// Aggregate sums a record collection for the payroll dashboard.
func Aggregate(records []PayrollRecord) Stats {
	stats := Stats{}
	for _, record := range records {
		stats.TotalPayroll += record.NetSalary
		switch record.Status {
		case StatusPaid:
			stats.PaidCount++
		case StatusPending:
			stats.PendingCount++
		}
	}
	if len(records) > 0 {
		stats.AverageSalary = stats.TotalPayroll / float64(len(records))
	}
	return stats
}
