package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoActiveSession  = errors.New("no active session")
	ErrSessionFinalized = errors.New("session already finalized")
	ErrNoGoalConfigured = errors.New("no goal configured for category")
)
