package directory

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on-leave"
)

// FilterAll disables a department or status filter.
const FilterAll = "all"

type EmergencyContact struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
}

type Employee struct {
	ID               string           `json:"id"`
	Name             string           `json:"name" validate:"required"`
	Email            string           `json:"email" validate:"required,email"`
	Position         string           `json:"position" validate:"required"`
	Department       string           `json:"department" validate:"required"`
	Status           string           `json:"status" validate:"required,oneof=active inactive on-leave"`
	Salary           float64          `json:"salary" validate:"required,gt=0"`
	JoinDate         string           `json:"joinDate" validate:"required,datetime=2006-01-02"`
	Avatar           string           `json:"avatar,omitempty"`
	Phone            string           `json:"phone" validate:"required"`
	Address          string           `json:"address" validate:"required"`
	Bio              string           `json:"bio,omitempty"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

// Filter narrows a search to exact department and status matches. Empty or
// "all" leaves the dimension unfiltered.
type Filter struct {
	Department string
	Status     string
}

// Stats is the dashboard aggregate, always computed from the live
// collection.
type Stats struct {
	Total            int            `json:"total"`
	ActiveCount      int            `json:"activeCount"`
	OnLeaveCount     int            `json:"onLeaveCount"`
	InactiveCount    int            `json:"inactiveCount"`
	TotalSalary      float64        `json:"totalSalary"`
	AverageSalary    float64        `json:"averageSalary"`
	DepartmentCounts map[string]int `json:"departmentCounts"`
	RecentHires      []Employee     `json:"recentHires"`
}
