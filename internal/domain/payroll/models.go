package payroll

// Record status values. No transition rules are defined for them; status is
// data until a payment policy exists.
const (
	StatusPaid       = "paid"
	StatusPending    = "pending"
	StatusProcessing = "processing"
)

// FilterAll disables the status filter.
const FilterAll = "all"

type PayrollRecord struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId" validate:"required"`
	EmployeeName string  `json:"employeeName" validate:"required"`
	Month        string  `json:"month" validate:"required"`
	Year         int     `json:"year" validate:"required,gte=2000"`
	BasicSalary  float64 `json:"basicSalary" validate:"required,gt=0"`
	Allowances   float64 `json:"allowances" validate:"gte=0"`
	Deductions   float64 `json:"deductions" validate:"gte=0"`
	NetSalary    float64 `json:"netSalary"`
	Status       string  `json:"status" validate:"required,oneof=paid pending processing"`
	PayDate      string  `json:"payDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// SalarySlip itemizes one employee/period. The three totals are always
// derived from the itemized fields, never edited directly.
type SalarySlip struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employeeId" validate:"required"`
	EmployeeName       string  `json:"employeeName" validate:"required"`
	Position           string  `json:"position"`
	Department         string  `json:"department"`
	Month              string  `json:"month" validate:"required"`
	Year               int     `json:"year" validate:"required,gte=2000"`
	BasicSalary        float64 `json:"basicSalary" validate:"required,gt=0"`
	HRA                float64 `json:"hra" validate:"gte=0"`
	TransportAllowance float64 `json:"transportAllowance" validate:"gte=0"`
	MedicalAllowance   float64 `json:"medicalAllowance" validate:"gte=0"`
	OtherAllowances    float64 `json:"otherAllowances" validate:"gte=0"`
	ProvidentFund      float64 `json:"providentFund" validate:"gte=0"`
	Tax                float64 `json:"tax" validate:"gte=0"`
	OtherDeductions    float64 `json:"otherDeductions" validate:"gte=0"`
	GrossSalary        float64 `json:"grossSalary"`
	TotalDeductions    float64 `json:"totalDeductions"`
	NetSalary          float64 `json:"netSalary"`
	PayDate            string  `json:"payDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type SlipTotals struct {
	GrossSalary     float64 `json:"grossSalary"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetSalary       float64 `json:"netSalary"`
}

type Stats struct {
	TotalPayroll  float64 `json:"totalPayroll"`
	PaidCount     int     `json:"paidCount"`
	PendingCount  int     `json:"pendingCount"`
	AverageSalary float64 `json:"averageSalary"`
}
