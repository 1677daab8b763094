// Package directory is the employee entity store: CRUD in insertion order,
// search, and the dashboard aggregate. The full collection is written back
// to the persistence adapter after every mutation.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"staffhub/internal/platform/identifier"
	"staffhub/internal/platform/kv"
	"staffhub/internal/platform/validate"
)

type Directory struct {
	store kv.Store
	newID identifier.Generator

	mu        sync.RWMutex
	employees []Employee
}

func NewDirectory(store kv.Store, newID identifier.Generator) *Directory {
	return &Directory{store: store, newID: newID}
}

// Restore loads the last persisted collection. A never-written key leaves
// the directory empty.
func (d *Directory) Restore(ctx context.Context) error {
	raw, err := d.store.Load(ctx, kv.KeyEmployees)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}

	var employees []Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return fmt.Errorf("decode employees: %w", err)
	}

	d.mu.Lock()
	d.employees = employees
	d.mu.Unlock()
	return nil
}

// List returns the collection in insertion order.
func (d *Directory) List() []Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

// Get is the read model the edit-flow collaborator uses to pre-populate a
// form.
func (d *Directory) Get(id string) (Employee, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, emp := range d.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return Employee{}, ErrNotFound
}

// Create appends a new employee, assigning an id when none was supplied.
// An explicit id that already exists is rejected.
func (d *Directory) Create(ctx context.Context, emp Employee) (Employee, error) {
	if err := validate.Struct(emp); err != nil {
		return Employee{}, err
	}

	d.mu.Lock()
	if emp.ID == "" {
		emp.ID = d.newID()
	} else if d.indexOf(emp.ID) >= 0 {
		d.mu.Unlock()
		return Employee{}, ErrDuplicateID
	}
	d.employees = append(d.employees, emp)
	d.mu.Unlock()

	if err := d.persist(ctx); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// Update replaces the employee with a matching id wholesale. Unknown ids
// are an error; Upsert keeps the create-on-miss path.
func (d *Directory) Update(ctx context.Context, emp Employee) error {
	if err := validate.Struct(emp); err != nil {
		return err
	}
	if emp.ID == "" {
		return ErrNotFound
	}

	d.mu.Lock()
	idx := d.indexOf(emp.ID)
	if idx < 0 {
		d.mu.Unlock()
		return ErrNotFound
	}
	d.employees[idx] = emp
	d.mu.Unlock()

	return d.persist(ctx)
}

// Upsert is the save operation the UI exposes: an existing id replaces in
// place, anything else appends as a create.
func (d *Directory) Upsert(ctx context.Context, emp Employee) (Employee, error) {
	if emp.ID != "" {
		d.mu.RLock()
		exists := d.indexOf(emp.ID) >= 0
		d.mu.RUnlock()
		if exists {
			if err := d.Update(ctx, emp); err != nil {
				return Employee{}, err
			}
			return emp, nil
		}
	}
	return d.Create(ctx, emp)
}

// Delete removes the employee with the given id, silently doing nothing for
// an unknown id.
func (d *Directory) Delete(ctx context.Context, id string) error {
	d.mu.Lock()
	idx := d.indexOf(id)
	if idx < 0 {
		d.mu.Unlock()
		return nil
	}
	d.employees = append(d.employees[:idx], d.employees[idx+1:]...)
	d.mu.Unlock()

	return d.persist(ctx)
}

// Count reports the number of employees in the directory.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.employees)
}

func (d *Directory) indexOf(id string) int {
	for i, emp := range d.employees {
		if emp.ID == id {
			return i
		}
	}
	return -1
}

func (d *Directory) persist(ctx context.Context) error {
	d.mu.RLock()
	raw, err := json.Marshal(d.employees)
	d.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}
	if err := d.store.Save(ctx, kv.KeyEmployees, raw); err != nil {
		return fmt.Errorf("persist employees: %w", err)
	}
	return nil
}
