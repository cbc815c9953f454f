package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")

	ErrHabitNotFound = errors.New("habit doesn't exists")
	ErrOwnerNotFound = errors.New("habit owner doesn't exists")
	ErrWrongOwner    = errors.New("habit belongs to another user")

	ErrCompletionExists         = errors.New("habit already completed on this date")
	ErrCompletionNotFound       = errors.New("no completion on this date")
	ErrCompletionDateNotAllowed = errors.New("completion date is in the future")

	ErrInvalidToken = errors.New("invalid auth token")
)
