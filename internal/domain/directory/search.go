package directory

import (
	"sort"
	"strings"
)

// Search returns the employees matching the query and filter. The query is
// a case-insensitive substring match against name, email, department, and
// position; department and status filters are exact matches.
func Search(employees []Employee, query string, filter Filter) []Employee {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if !matchesQuery(emp, query) {
			continue
		}
		if !filterMatches(filter.Department, emp.Department) {
			continue
		}
		if !filterMatches(filter.Status, emp.Status) {
			continue
		}
		out = append(out, emp)
	}
	return out
}

func matchesQuery(emp Employee, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(emp.Name), query) ||
		strings.Contains(strings.ToLower(emp.Email), query) ||
		strings.Contains(strings.ToLower(emp.Department), query) ||
		strings.Contains(strings.ToLower(emp.Position), query)
}

func filterMatches(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// Aggregate computes the dashboard statistics for a collection. The input
// slice is left untouched.
func Aggregate(employees []Employee) Stats {
	stats := Stats{
		Total:            len(employees),
		DepartmentCounts: make(map[string]int),
	}

	for _, emp := range employees {
		switch emp.Status {
		case StatusActive:
			stats.ActiveCount++
		case StatusOnLeave:
			stats.OnLeaveCount++
		case StatusInactive:
			stats.InactiveCount++
		}
		stats.TotalSalary += emp.Salary
		stats.DepartmentCounts[emp.Department]++
	}

	if stats.Total > 0 {
		stats.AverageSalary = stats.TotalSalary / float64(stats.Total)
	}

	stats.RecentHires = recentHires(employees, 5)
	return stats
}

func recentHires(employees []Employee, limit int) []Employee {
	sorted := make([]Employee, len(employees))
	copy(sorted, employees)
	// Join dates are YYYY-MM-DD, so lexical order is chronological.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].JoinDate > sorted[j].JoinDate
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
