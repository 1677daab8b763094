package leave

import "errors"

var (
	ErrNotFound        = errors.New("leave application not found")
	ErrDuplicateID     = errors.New("leave application id already exists")
	ErrAlreadyReviewed = errors.New("leave application has already been reviewed")
	ErrInvalidDecision = errors.New("review decision must be approved or rejected")
)
