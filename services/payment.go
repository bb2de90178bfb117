package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/validation"
)

// PaymentService records payments against appointments. Actual gateway
// processing happens elsewhere; status updates arrive through Update.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// Create records a PENDING payment for an appointment. At most one
// payment per appointment; only the customer on the appointment or an
// admin may record one.
func (s *PaymentService) Create(sess Session, in *validation.CreatePaymentInput) (*models.Payment, error) {
	var appointment models.Appointment
	err := s.db.Preload("Customer").Preload("Professional").Preload("Payment").
		First(&appointment, in.AppointmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if appointment.Payment != nil {
		return nil, ErrPaymentExists
	}

	if appointment.CustomerID != sess.UserID && !sess.IsAdmin() {
		return nil, ErrUnauthorized
	}

	payment := models.Payment{
		AppointmentID: in.AppointmentID,
		Amount:        in.Amount,
		Method:        in.Method,
		Status:        models.PaymentPending,
		TransactionID: in.TransactionID,
	}
	if payment.TransactionID == "" {
		// Internal reference until the gateway reports its own.
		payment.TransactionID = uuid.NewString()
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		notification := models.Notification{
			UserID: appointment.Professional.UserID,
			Type:   models.NotifyEmail,
			Message: fmt.Sprintf("Payment of ₹%.2f initiated for appointment with %s",
				in.Amount, appointment.Customer.Name),
			Status: models.NotificationPending,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update is the gateway-callback surface: admins set the final status
// and the gateway's transaction id.
func (s *PaymentService) Update(sess Session, id uint, in *validation.UpdatePaymentInput) (*models.Payment, error) {
	if !sess.IsAdmin() {
		return nil, ErrUnauthorized
	}

	var payment models.Payment
	err := s.db.First(&payment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		payment.Status = *in.Status
	}
	if in.TransactionID != nil {
		payment.TransactionID = *in.TransactionID
	}

	if err := s.db.Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// List returns the caller's payments: professionals see payments on
// their own appointments, everyone else sees payments they made.
func (s *PaymentService) List(sess Session, in *validation.GetPaymentsInput) ([]models.Payment, PageInfo, error) {
	query := s.db.Model(&models.Payment{}).
		Joins("JOIN appointments ON appointments.id = payments.appointment_id")

	if sess.Role == models.RoleProfessional {
		query = query.
			Joins("JOIN professionals ON professionals.id = appointments.professional_id").
			Where("professionals.user_id = ?", sess.UserID)
	} else if !sess.IsAdmin() {
		query = query.Where("appointments.customer_id = ?", sess.UserID)
	}
	if in.Status != "" {
		query = query.Where("payments.status = ?", in.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageInfo{}, err
	}

	var payments []models.Payment
	err := query.
		Order("payments.created_at DESC").
		Offset(in.Offset()).Limit(in.Limit).
		Find(&payments).Error
	if err != nil {
		return nil, PageInfo{}, err
	}

	return payments, pageInfo(in.Page, in.Limit, total), nil
}
