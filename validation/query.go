package validation

import (
	"time"

	"github.com/appbook/appbook/models"
)

// Pagination carries normalized page/limit values shared by every list
// query.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize applies defaults and caps the page size.
func (p *Pagination) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

type GetAppointmentsInput struct {
	ProfessionalID uint                     `json:"professional_id"`
	CustomerID     uint                     `json:"customer_id"`
	Status         models.AppointmentStatus `json:"status"`
	StartDate      *time.Time               `json:"start_date"`
	EndDate        *time.Time               `json:"end_date"`
	Pagination
}

func (in *GetAppointmentsInput) Validate() error {
	in.Normalize(DefaultPageSize)
	errs := FieldErrors{}
	if in.Status != "" && !in.Status.IsValid() {
		errs["status"] = "Invalid status"
	}
	return errs.OrNil()
}

type GetProfessionalsInput struct {
	ServiceType string `json:"service_type"`
	Location    string `json:"location"`
	IsActive    *bool  `json:"is_active"`
	Pagination
}

func (in *GetProfessionalsInput) Validate() error {
	in.Normalize(DefaultPageSize)
	return nil
}

type GetNotificationsInput struct {
	IsRead *bool                   `json:"is_read"`
	Type   models.NotificationType `json:"type"`
	Pagination
}

func (in *GetNotificationsInput) Validate() error {
	in.Normalize(20)
	errs := FieldErrors{}
	if in.Type != "" && !in.Type.IsValid() {
		errs["type"] = "Invalid notification type"
	}
	return errs.OrNil()
}

type GetPaymentsInput struct {
	Status models.PaymentStatus `json:"status"`
	Pagination
}

func (in *GetPaymentsInput) Validate() error {
	in.Normalize(DefaultPageSize)
	errs := FieldErrors{}
	if in.Status != "" && !in.Status.IsValid() {
		errs["status"] = "Invalid payment status"
	}
	return errs.OrNil()
}
