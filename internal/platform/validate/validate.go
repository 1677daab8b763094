// Package validate enforces field-level constraints at the domain boundary,
// so the entity stores stay valid even when called from non-form clients.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var instance = validator.New(validator.WithRequiredStructEnabled())

// FieldIssue describes a single failed constraint.
type FieldIssue struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Error is the structured validation failure returned to callers.
type Error struct {
	Issues []FieldIssue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", issue.Field, issue.Rule, issue.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Rule))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Struct validates s against its struct tags and returns a *Error describing
// every failed field, or nil.
func Struct(s any) error {
	err := instance.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	issues := make([]FieldIssue, 0, len(verrs))
	for _, verr := range verrs {
		issues = append(issues, FieldIssue{
			Field: verr.Field(),
			Rule:  verr.Tag(),
			Param: verr.Param(),
		})
	}
	return &Error{Issues: issues}
}

// AsError reports whether err is a validation failure and unwraps it.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
