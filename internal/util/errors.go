package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrUnitNotFound       = errors.New("unit not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrInvalidTimeSpent   = errors.New("time_spent must be a non-negative integer")
)
