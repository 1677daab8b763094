package leave

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// CalculateDays returns the inclusive day count between two YYYY-MM-DD
// dates: a single-day leave counts as 1.
func CalculateDays(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}
