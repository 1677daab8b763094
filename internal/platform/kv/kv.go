// Package kv is the durable key/value port behind every domain collection.
// Each collection is stored as a single serialized blob under a named key;
// there are no guarantees beyond single-key atomicity.
package kv

import (
	"context"
	"errors"
)

// Well-known keys. Session and employee keys match the persisted store the
// UI collaborators expect; leave and payroll keys are parity persistence.
const (
	KeySessionAuthenticated = "session.authenticated"
	KeySessionUser          = "session.user"
	KeyEmployees            = "employees.collection"
	KeyLeaveApplications    = "leave.collection"
	KeyPayrollRecords       = "payroll.records"
	KeySalarySlips          = "payroll.slips"
)

// ErrNotFound is returned by Load for a key that was never written or was
// deleted.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence adapter contract. Save overwrites, Delete is
// idempotent, and Load reports ErrNotFound for absent keys.
type Store interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
