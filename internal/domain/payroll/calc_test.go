package payroll

import "testing"

func TestComputeNet(t *testing.T) {
	record := PayrollRecord{BasicSalary: 75000, Allowances: 15000, Deductions: 12000}
	if net := ComputeNet(record); net != 78000 {
		t.Fatalf("expected net 78000, got %v", net)
	}
}

func TestComputeSlipTotals(t *testing.T) {
	slip := SalarySlip{
		BasicSalary:        75000,
		HRA:                7500,
		TransportAllowance: 2500,
		MedicalAllowance:   2000,
		OtherAllowances:    3000,
		ProvidentFund:      9000,
		Tax:                2500,
		OtherDeductions:    500,
	}

	totals := ComputeSlipTotals(slip)
	if totals.GrossSalary != 90000 {
		t.Fatalf("expected gross 90000, got %v", totals.GrossSalary)
	}
	if totals.TotalDeductions != 12000 {
		t.Fatalf("expected deductions 12000, got %v", totals.TotalDeductions)
	}
	if totals.NetSalary != 78000 {
		t.Fatalf("expected net 78000, got %v", totals.NetSalary)
	}
}

func TestComputeSlipTotalsZeroItems(t *testing.T) {
	totals := ComputeSlipTotals(SalarySlip{BasicSalary: 50000})
	if totals.GrossSalary != 50000 || totals.TotalDeductions != 0 || totals.NetSalary != 50000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}
