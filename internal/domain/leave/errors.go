package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyReviewed  = errors.New("leave request already reviewed")
	ErrInvalidLeaveType = errors.New("invalid leave type")
)
