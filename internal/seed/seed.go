// Package seed writes the demo dataset into the persistence adapter so a
// fresh install starts with something to look at. Every key is only
// written when it has never been saved, so user data is never clobbered.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"staffhub/internal/domain/directory"
	"staffhub/internal/domain/leave"
	"staffhub/internal/domain/payroll"
	"staffhub/internal/platform/kv"
)

// Run seeds every absent collection. Call before the domain services
// restore their state.
func Run(ctx context.Context, store kv.Store) error {
	if err := ensure(ctx, store, kv.KeyEmployees, demoEmployees()); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	if err := ensure(ctx, store, kv.KeyLeaveApplications, demoLeaveApplications()); err != nil {
		return fmt.Errorf("seed leave applications: %w", err)
	}
	if err := ensure(ctx, store, kv.KeyPayrollRecords, demoPayrollRecords()); err != nil {
		return fmt.Errorf("seed payroll records: %w", err)
	}
	if err := ensure(ctx, store, kv.KeySalarySlips, demoSalarySlips()); err != nil {
		return fmt.Errorf("seed salary slips: %w", err)
	}
	return nil
}

func ensure(ctx context.Context, store kv.Store, key string, value any) error {
	_, err := store.Load(ctx, key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Save(ctx, key, raw)
}

func demoEmployees() []directory.Employee {
	return []directory.Employee{
		{
			ID:         "1",
			Name:       "John Doe",
			Email:      "john.doe@company.com",
			Position:   "Software Engineer",
			Department: "Engineering",
			Status:     directory.StatusActive,
			Salary:     75000,
			JoinDate:   "2023-01-15",
			Phone:      "+1 (555) 123-4567",
			Address:    "123 Main St, City, State 12345",
			Bio:        "Experienced software engineer with expertise in full-stack development.",
			EmergencyContact: directory.EmergencyContact{
				Name:         "Jane Doe",
				Phone:        "+1 (555) 987-6543",
				Relationship: "Spouse",
			},
		},
		{
			ID:         "2",
			Name:       "Jane Smith",
			Email:      "jane.smith@company.com",
			Position:   "Product Manager",
			Department: "Product",
			Status:     directory.StatusActive,
			Salary:     85000,
			JoinDate:   "2022-08-20",
			Phone:      "+1 (555) 987-6543",
			Address:    "456 Oak Ave, City, State 12345",
			Bio:        "Strategic product manager with a focus on user experience and growth.",
			EmergencyContact: directory.EmergencyContact{
				Name:         "John Smith",
				Phone:        "+1 (555) 123-4567",
				Relationship: "Spouse",
			},
		},
		{
			ID:         "3",
			Name:       "Mike Johnson",
			Email:      "mike.johnson@company.com",
			Position:   "Designer",
			Department: "Design",
			Status:     directory.StatusOnLeave,
			Salary:     65000,
			JoinDate:   "2023-03-10",
			Phone:      "+1 (555) 456-7890",
			Address:    "789 Pine Rd, City, State 12345",
			Bio:        "Creative designer specializing in user interface and brand design.",
			EmergencyContact: directory.EmergencyContact{
				Name:         "Sarah Johnson",
				Phone:        "+1 (555) 321-0987",
				Relationship: "Sibling",
			},
		},
		{
			ID:         "4",
			Name:       "Sarah Wilson",
			Email:      "sarah.wilson@company.com",
			Position:   "HR Manager",
			Department: "Human Resources",
			Status:     directory.StatusActive,
			Salary:     70000,
			JoinDate:   "2021-11-05",
			Phone:      "+1 (555) 321-0987",
			Address:    "321 Elm St, City, State 12345",
			Bio:        "HR professional focused on employee development and company culture.",
			EmergencyContact: directory.EmergencyContact{
				Name:         "Mike Wilson",
				Phone:        "+1 (555) 456-7890",
				Relationship: "Parent",
			},
		},
	}
}

const demoAvatar = "/placeholder.svg?height=32&width=32"

func demoLeaveApplications() []leave.LeaveApplication {
	return []leave.LeaveApplication{
		{
			ID:             "1",
			EmployeeID:     "1",
			EmployeeName:   "John Doe",
			EmployeeEmail:  "john.doe@company.com",
			EmployeeAvatar: demoAvatar,
			LeaveType:      leave.TypeVacation,
			StartDate:      "2024-03-15",
			EndDate:        "2024-03-22",
			Days:           8,
			Reason:         "Family vacation to Europe",
			Status:         leave.StatusPending,
			AppliedDate:    "2024-02-20",
		},
		{
			ID:             "2",
			EmployeeID:     "2",
			EmployeeName:   "Jane Smith",
			EmployeeEmail:  "jane.smith@company.com",
			EmployeeAvatar: demoAvatar,
			LeaveType:      leave.TypeSick,
			StartDate:      "2024-02-28",
			EndDate:        "2024-03-01",
			Days:           3,
			Reason:         "Medical appointment and recovery",
			Status:         leave.StatusApproved,
			AppliedDate:    "2024-02-25",
			ReviewedBy:     "Admin User",
			ReviewedDate:   "2024-02-26",
			ReviewComments: "Approved for medical reasons",
		},
		{
			ID:             "3",
			EmployeeID:     "3",
			EmployeeName:   "Mike Johnson",
			EmployeeEmail:  "mike.johnson@company.com",
			EmployeeAvatar: demoAvatar,
			LeaveType:      leave.TypePersonal,
			StartDate:      "2024-04-10",
			EndDate:        "2024-04-12",
			Days:           3,
			Reason:         "Personal matters to attend",
			Status:         leave.StatusRejected,
			AppliedDate:    "2024-02-15",
			ReviewedBy:     "Admin User",
			ReviewedDate:   "2024-02-18",
			ReviewComments: "Insufficient notice period",
		},
		{
			ID:             "4",
			EmployeeID:     "4",
			EmployeeName:   "Sarah Wilson",
			EmployeeEmail:  "sarah.wilson@company.com",
			EmployeeAvatar: demoAvatar,
			LeaveType:      leave.TypeMaternity,
			StartDate:      "2024-05-01",
			EndDate:        "2024-08-01",
			Days:           93,
			Reason:         "Maternity leave for newborn",
			Status:         leave.StatusApproved,
			AppliedDate:    "2024-01-15",
			ReviewedBy:     "Admin User",
			ReviewedDate:   "2024-01-16",
			ReviewComments: "Approved as per company policy",
		},
	}
}

func demoPayrollRecords() []payroll.PayrollRecord {
	return []payroll.PayrollRecord{
		{
			ID: "1", EmployeeID: "1", EmployeeName: "John Doe",
			Month: "December", Year: 2024,
			BasicSalary: 75000, Allowances: 15000, Deductions: 12000, NetSalary: 78000,
			Status: payroll.StatusPaid, PayDate: "2024-12-31",
		},
		{
			ID: "2", EmployeeID: "2", EmployeeName: "Jane Smith",
			Month: "December", Year: 2024,
			BasicSalary: 85000, Allowances: 17000, Deductions: 14000, NetSalary: 88000,
			Status: payroll.StatusPaid, PayDate: "2024-12-31",
		},
		{
			ID: "3", EmployeeID: "3", EmployeeName: "Mike Johnson",
			Month: "December", Year: 2024,
			BasicSalary: 65000, Allowances: 13000, Deductions: 10000, NetSalary: 68000,
			Status: payroll.StatusPending,
		},
		{
			ID: "4", EmployeeID: "4", EmployeeName: "Sarah Wilson",
			Month: "December", Year: 2024,
			BasicSalary: 70000, Allowances: 14000, Deductions: 11000, NetSalary: 73000,
			Status: payroll.StatusProcessing,
		},
	}
}

func demoSalarySlips() []payroll.SalarySlip {
	slip := payroll.SalarySlip{
		ID:                 "1",
		EmployeeID:         "1",
		EmployeeName:       "John Doe",
		Position:           "Software Engineer",
		Department:         "Engineering",
		Month:              "December",
		Year:               2024,
		BasicSalary:        75000,
		HRA:                7500,
		TransportAllowance: 2500,
		MedicalAllowance:   2000,
		OtherAllowances:    3000,
		ProvidentFund:      9000,
		Tax:                2500,
		OtherDeductions:    500,
		PayDate:            "2024-12-31",
	}
	totals := payroll.ComputeSlipTotals(slip)
	slip.GrossSalary = totals.GrossSalary
	slip.TotalDeductions = totals.TotalDeductions
	slip.NetSalary = totals.NetSalary
	return []payroll.SalarySlip{slip}
}
