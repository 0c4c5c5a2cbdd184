package booking

import "errors"

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrDateNotBookable is returned when the requested date has no open slots
	// or lies in the past.
	ErrDateNotBookable = errors.New("date is not available for booking")
	// ErrSlotConflict is returned when the chosen slot was taken between
	// selection and submission.
	ErrSlotConflict = errors.New("the selected slot has just been booked, please pick another time")
)
