// Package leave owns leave applications and their review workflow: pending
// is the only initial state, approved and rejected are terminal.
package leave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"staffhub/internal/platform/identifier"
	"staffhub/internal/platform/kv"
	"staffhub/internal/platform/validate"
)

type Registry struct {
	store kv.Store
	newID identifier.Generator
	now   func() time.Time

	mu           sync.RWMutex
	applications []LeaveApplication
}

func NewRegistry(store kv.Store, newID identifier.Generator) *Registry {
	return &Registry{store: store, newID: newID, now: time.Now}
}

// Restore loads the last persisted applications.
func (r *Registry) Restore(ctx context.Context) error {
	raw, err := r.store.Load(ctx, kv.KeyLeaveApplications)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load leave applications: %w", err)
	}

	var applications []LeaveApplication
	if err := json.Unmarshal(raw, &applications); err != nil {
		return fmt.Errorf("decode leave applications: %w", err)
	}

	r.mu.Lock()
	r.applications = applications
	r.mu.Unlock()
	return nil
}

func (r *Registry) List() []LeaveApplication {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]LeaveApplication, len(r.applications))
	copy(out, r.applications)
	return out
}

func (r *Registry) Get(id string) (LeaveApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, app := range r.applications {
		if app.ID == id {
			return app, nil
		}
	}
	return LeaveApplication{}, ErrNotFound
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.applications)
}

// Submit validates and registers a new application. Days are always
// recomputed from the date range, status starts pending, and the applied
// date is stamped with the current day.
func (r *Registry) Submit(ctx context.Context, app LeaveApplication) (LeaveApplication, error) {
	if err := validate.Struct(app); err != nil {
		return LeaveApplication{}, err
	}

	days, err := CalculateDays(app.StartDate, app.EndDate)
	if err != nil {
		return LeaveApplication{}, err
	}
	app.Days = days
	app.Status = StatusPending
	app.AppliedDate = r.now().Format(dateLayout)
	app.ReviewedBy = ""
	app.ReviewedDate = ""
	app.ReviewComments = ""

	r.mu.Lock()
	if app.ID == "" {
		app.ID = r.newID()
	} else if r.indexOf(app.ID) >= 0 {
		r.mu.Unlock()
		return LeaveApplication{}, ErrDuplicateID
	}
	r.applications = append(r.applications, app)
	r.mu.Unlock()

	if err := r.persist(ctx); err != nil {
		return LeaveApplication{}, err
	}
	return app, nil
}

// Review resolves a pending application. Approved and rejected are both
// terminal, so a second review of the same application fails.
func (r *Registry) Review(ctx context.Context, id, decision, reviewer, comments string) (LeaveApplication, error) {
	if decision != StatusApproved && decision != StatusRejected {
		return LeaveApplication{}, ErrInvalidDecision
	}

	r.mu.Lock()
	idx := r.indexOf(id)
	if idx < 0 {
		r.mu.Unlock()
		return LeaveApplication{}, ErrNotFound
	}
	if r.applications[idx].Status != StatusPending {
		r.mu.Unlock()
		return LeaveApplication{}, ErrAlreadyReviewed
	}

	r.applications[idx].Status = decision
	r.applications[idx].ReviewedBy = reviewer
	r.applications[idx].ReviewedDate = r.now().Format(dateLayout)
	r.applications[idx].ReviewComments = comments
	reviewed := r.applications[idx]
	r.mu.Unlock()

	if err := r.persist(ctx); err != nil {
		return LeaveApplication{}, err
	}
	return reviewed, nil
}

func (r *Registry) indexOf(id string) int {
	for i, app := range r.applications {
		if app.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) persist(ctx context.Context) error {
	r.mu.RLock()
	raw, err := json.Marshal(r.applications)
	r.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode leave applications: %w", err)
	}
	if err := r.store.Save(ctx, kv.KeyLeaveApplications, raw); err != nil {
		return fmt.Errorf("persist leave applications: %w", err)
	}
	return nil
}

// Search returns the applications matching the query and filter. The query
// is a case-insensitive substring match against the employee name, email,
// and reason.
func Search(applications []LeaveApplication, query string, filter Filter) []LeaveApplication {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]LeaveApplication, 0, len(applications))
	for _, app := range applications {
		if query != "" &&
			!strings.Contains(strings.ToLower(app.EmployeeName), query) &&
			!strings.Contains(strings.ToLower(app.EmployeeEmail), query) &&
			!strings.Contains(strings.ToLower(app.Reason), query) {
			continue
		}
		if filter.Status != "" && filter.Status != FilterAll && filter.Status != app.Status {
			continue
		}
		if filter.LeaveType != "" && filter.LeaveType != FilterAll && filter.LeaveType != app.LeaveType {
			continue
		}
		out = append(out, app)
	}
	return out
}

// Aggregate counts applications per workflow state.
func Aggregate(applications []LeaveApplication) Stats {
	stats := Stats{Total: len(applications)}
	for _, app := range applications {
		switch app.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}
