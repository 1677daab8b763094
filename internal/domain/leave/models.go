package leave

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeVacation  = "vacation"
	TypeSick      = "sick"
	TypePersonal  = "personal"
	TypeMaternity = "maternity"
	TypePaternity = "paternity"
	TypeEmergency = "emergency"
)

// FilterAll disables a status or type filter.
const FilterAll = "all"

// LeaveApplication carries a denormalized snapshot of the employee at
// submission time; later edits to the directory do not rewrite history.
type LeaveApplication struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId" validate:"required"`
	EmployeeName   string `json:"employeeName" validate:"required"`
	EmployeeEmail  string `json:"employeeEmail" validate:"required,email"`
	EmployeeAvatar string `json:"employeeAvatar,omitempty"`
	LeaveType      string `json:"leaveType" validate:"required,oneof=vacation sick personal maternity paternity emergency"`
	StartDate      string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Days           int    `json:"days"`
	Reason         string `json:"reason" validate:"required"`
	Status         string `json:"status"`
	AppliedDate    string `json:"appliedDate"`
	ReviewedBy     string `json:"reviewedBy,omitempty"`
	ReviewedDate   string `json:"reviewedDate,omitempty"`
	ReviewComments string `json:"reviewComments,omitempty"`
}

// Filter narrows a search to exact status and type matches. Empty or "all"
// leaves the dimension unfiltered.
type Filter struct {
	Status    string
	LeaveType string
}

type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
