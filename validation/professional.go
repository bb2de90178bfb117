package validation

import (
	"github.com/appbook/appbook/models"
)

type CreateProfessionalInput struct {
	ServiceType    models.ServiceType   `json:"service_type"`
	Specialization string               `json:"specialization"`
	Location       string               `json:"location"`
	Bio            string               `json:"bio"`
	WorkingHours   *models.WorkingHours `json:"working_hours"`
}

func (in *CreateProfessionalInput) Validate() error {
	errs := FieldErrors{}
	if !in.ServiceType.IsValid() {
		errs["service_type"] = "Invalid service type"
	}
	if in.Location == "" {
		errs["location"] = "Location is required"
	}
	if len(in.Bio) > MaxBioLength {
		errs["bio"] = "Bio too long"
	}
	if in.WorkingHours != nil {
		validateWorkingHours(*in.WorkingHours, errs)
	}
	return errs.OrNil()
}

type UpdateProfessionalInput struct {
	ServiceType    *models.ServiceType  `json:"service_type"`
	Specialization *string              `json:"specialization"`
	Location       *string              `json:"location"`
	Bio            *string              `json:"bio"`
	WorkingHours   *models.WorkingHours `json:"working_hours"`
	IsActive       *bool                `json:"is_active"`
}

func (in *UpdateProfessionalInput) Validate() error {
	errs := FieldErrors{}
	if in.ServiceType != nil && !in.ServiceType.IsValid() {
		errs["service_type"] = "Invalid service type"
	}
	if in.Location != nil && *in.Location == "" {
		errs["location"] = "Location is required"
	}
	if in.Bio != nil && len(*in.Bio) > MaxBioLength {
		errs["bio"] = "Bio too long"
	}
	if in.WorkingHours != nil {
		validateWorkingHours(*in.WorkingHours, errs)
	}
	return errs.OrNil()
}

func validateWorkingHours(wh models.WorkingHours, errs FieldErrors) {
	if !validClockTime(wh.Start) {
		errs["working_hours.start"] = "Invalid time format"
	}
	if !validClockTime(wh.End) {
		errs["working_hours.end"] = "Invalid time format"
	}
	if len(wh.Days) == 0 {
		errs["working_hours.days"] = "At least one working day required"
	}
}
