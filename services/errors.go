package services

import "errors"

var (
	// ErrNotFound is returned when an entity id does not resolve.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized is returned when the caller is neither the
	// customer, the owning professional, nor an admin.
	ErrUnauthorized = errors.New("you are not authorized to perform this action")
	// ErrConflict is returned when the requested slot overlaps an
	// existing booking for the professional.
	ErrConflict = errors.New("appointment time conflicts with existing booking")
	// ErrProfessionalInactive covers both a missing professional and a
	// deactivated one; callers cannot distinguish the two.
	ErrProfessionalInactive = errors.New("professional not found or inactive")
	// ErrPaymentExists is returned on a second payment for the same
	// appointment.
	ErrPaymentExists = errors.New("payment already exists for this appointment")
	// ErrProfileExists is returned when a user already owns a
	// professional profile.
	ErrProfileExists = errors.New("professional profile already exists")
)
