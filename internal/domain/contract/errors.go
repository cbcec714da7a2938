package contract

import "errors"

// Sentinel errors returned by repositories.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrCourseNotFound = errors.New("course not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
