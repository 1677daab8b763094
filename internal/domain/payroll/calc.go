package payroll

// ComputeNet derives a record's net pay from its coarse components.
func ComputeNet(record PayrollRecord) float64 {
	return record.BasicSalary + record.Allowances - record.Deductions
}

// ComputeSlipTotals derives a slip's totals from the itemized fields. Gross
// sums every earning, deductions sum every withheld amount.
func ComputeSlipTotals(slip SalarySlip) SlipTotals {
	gross := slip.BasicSalary + slip.HRA + slip.TransportAllowance + slip.MedicalAllowance + slip.OtherAllowances
	deductions := slip.ProvidentFund + slip.Tax + slip.OtherDeductions
	return SlipTotals{
		GrossSalary:     gross,
		TotalDeductions: deductions,
		NetSalary:       gross - deductions,
	}
}
