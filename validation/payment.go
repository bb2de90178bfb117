package validation

import (
	"github.com/appbook/appbook/models"
)

type CreatePaymentInput struct {
	AppointmentID uint                 `json:"appointment_id"`
	Amount        float64              `json:"amount"`
	Method        models.PaymentMethod `json:"method"`
	TransactionID string               `json:"transaction_id"`
}

func (in *CreatePaymentInput) Validate() error {
	errs := FieldErrors{}
	if in.AppointmentID == 0 {
		errs["appointment_id"] = "Invalid appointment ID"
	}
	if in.Amount <= 0 {
		errs["amount"] = "Amount must be positive"
	}
	if !in.Method.IsValid() {
		errs["method"] = "Invalid payment method"
	}
	return errs.OrNil()
}

type UpdatePaymentInput struct {
	Status        *models.PaymentStatus `json:"status"`
	TransactionID *string               `json:"transaction_id"`
}

func (in *UpdatePaymentInput) Validate() error {
	errs := FieldErrors{}
	if in.Status != nil && !in.Status.IsValid() {
		errs["status"] = "Invalid payment status"
	}
	return errs.OrNil()
}
