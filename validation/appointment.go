package validation

import (
	"time"

	"github.com/appbook/appbook/models"
)

type CreateAppointmentInput struct {
	ProfessionalID uint      `json:"professional_id"`
	ServiceType    string    `json:"service_type"`
	DateTime       time.Time `json:"date_time"`
	Duration       int       `json:"duration"`
	Notes          string    `json:"notes"`
}

func (in *CreateAppointmentInput) Validate() error {
	errs := FieldErrors{}
	if in.ProfessionalID == 0 {
		errs["professional_id"] = "Invalid professional ID"
	}
	if in.ServiceType == "" {
		errs["service_type"] = "Service type is required"
	}
	if !in.DateTime.After(time.Now()) {
		errs["date_time"] = "Appointment must be scheduled for the future"
	}
	if in.Duration < 0 {
		errs["duration"] = "Duration must be positive"
	}
	if in.Duration == 0 {
		in.Duration = models.DefaultDuration
	}
	if len(in.Notes) > MaxNotesLength {
		errs["notes"] = "Notes too long"
	}
	return errs.OrNil()
}

type UpdateAppointmentInput struct {
	Status   *models.AppointmentStatus `json:"status"`
	DateTime *time.Time                `json:"date_time"`
	Duration *int                      `json:"duration"`
	Notes    *string                   `json:"notes"`
}

func (in *UpdateAppointmentInput) Validate() error {
	errs := FieldErrors{}
	if in.Status != nil && !in.Status.IsValid() {
		errs["status"] = "Invalid status"
	}
	if in.Duration != nil && *in.Duration <= 0 {
		errs["duration"] = "Duration must be positive"
	}
	if in.Notes != nil && len(*in.Notes) > MaxNotesLength {
		errs["notes"] = "Notes too long"
	}
	return errs.OrNil()
}

type CancelAppointmentInput struct {
	Reason string `json:"reason"`
}
