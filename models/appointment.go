package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusApproved  AppointmentStatus = "APPROVED"
	StatusRejected  AppointmentStatus = "REJECTED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further status transitions are permitted.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

var (
	ErrAlreadyCancelled  = errors.New("appointment is already cancelled")
	ErrCancelCompleted   = errors.New("cannot cancel a completed appointment")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// DefaultDuration is the appointment length in minutes applied when the
// caller does not supply one.
const DefaultDuration = 60

type Appointment struct {
	gorm.Model
	CustomerID     uint              `json:"customer_id"`
	Customer       User              `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProfessionalID uint              `json:"professional_id"`
	Professional   Professional      `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	ServiceType    string            `json:"service_type"`
	DateTime       time.Time         `json:"date_time" gorm:"index"`
	Duration       int               `json:"duration" gorm:"default:60"`
	Status         AppointmentStatus `json:"status" gorm:"type:varchar(20);index"`
	Notes          string            `json:"notes,omitempty"`
	Payment        *Payment          `json:"payment,omitempty" gorm:"foreignKey:AppointmentID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Duration == 0 {
		a.Duration = DefaultDuration
	}
	return nil
}

// CanTransitionTo validates a status change. CANCELLED and COMPLETED are
// terminal.
func (a *Appointment) CanTransitionTo(newStatus AppointmentStatus) error {
	if a.Status.IsTerminal() && newStatus != a.Status {
		return fmt.Errorf("%w: no transitions allowed from %s", ErrInvalidTransition, a.Status)
	}
	return nil
}

// CanCancel checks the cancellation preconditions.
func (a *Appointment) CanCancel() error {
	switch a.Status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrCancelCompleted
	}
	return nil
}

// End returns the instant the appointment finishes.
func (a *Appointment) End() time.Time {
	return a.DateTime.Add(time.Duration(a.Duration) * time.Minute)
}
