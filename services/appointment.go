package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/scheduling"
	"github.com/appbook/appbook/validation"
)

// AppointmentService owns the booking state machine: create, update and
// cancel, including the conflict check against a professional's
// existing bookings.
type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

// Create books a PENDING appointment for the calling customer. The
// conflict check and the insert run in one transaction with the
// professional row locked, so two concurrent requests for overlapping
// slots cannot both succeed.
func (s *AppointmentService) Create(sess Session, in *validation.CreateAppointmentInput) (*models.Appointment, error) {
	var professional models.Professional
	err := s.db.Preload("User").First(&professional, in.ProfessionalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfessionalInactive
	}
	if err != nil {
		return nil, err
	}
	if !professional.IsActive {
		return nil, ErrProfessionalInactive
	}

	appointment := models.Appointment{
		CustomerID:     sess.UserID,
		ProfessionalID: in.ProfessionalID,
		ServiceType:    in.ServiceType,
		DateTime:       in.DateTime,
		Duration:       in.Duration,
		Status:         models.StatusPending,
		Notes:          in.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockProfessional(tx, in.ProfessionalID); err != nil {
			return err
		}
		if err := checkConflicts(tx, in.ProfessionalID, 0, in.DateTime, in.Duration); err != nil {
			return err
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}

		var customer models.User
		if err := tx.First(&customer, sess.UserID).Error; err != nil {
			return err
		}
		notification := models.Notification{
			UserID:  professional.UserID,
			Type:    models.NotifyEmail,
			Message: fmt.Sprintf("New appointment request from %s for %s", customer.Name, in.ServiceType),
			Status:  models.NotificationPending,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(appointment.ID)
}

// Update applies partial changes. Moving the appointment in time
// re-runs the conflict check against the professional's other bookings.
func (s *AppointmentService) Update(sess Session, id uint, in *validation.UpdateAppointmentInput) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Preload("Customer").Preload("Professional.User").First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	isCustomer := appointment.CustomerID == sess.UserID
	isProfessional := appointment.Professional.UserID == sess.UserID
	if !isCustomer && !isProfessional && !sess.IsAdmin() {
		return nil, ErrUnauthorized
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockProfessional(tx, appointment.ProfessionalID); err != nil {
			return err
		}

		dateTime := appointment.DateTime
		duration := appointment.Duration
		rescheduled := false
		if in.DateTime != nil && !in.DateTime.Equal(appointment.DateTime) {
			dateTime = *in.DateTime
			rescheduled = true
		}
		if in.Duration != nil && *in.Duration != appointment.Duration {
			duration = *in.Duration
			rescheduled = true
		}
		if rescheduled {
			if err := checkConflicts(tx, appointment.ProfessionalID, appointment.ID, dateTime, duration); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"date_time": dateTime,
			"duration":  duration,
		}
		if in.Status != nil {
			if err := appointment.CanTransitionTo(*in.Status); err != nil {
				return err
			}
			updates["status"] = *in.Status
		}
		if in.Notes != nil {
			updates["notes"] = *in.Notes
		}

		err := tx.Model(&models.Appointment{}).
			Where("id = ?", appointment.ID).
			Updates(updates).Error
		if err != nil {
			return err
		}
		return tx.Create(updateNotice(&appointment, isCustomer)).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(appointment.ID)
}

// Cancel moves the appointment to CANCELLED, refunds a PAID payment and
// notifies the other party.
func (s *AppointmentService) Cancel(sess Session, id uint, reason string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Preload("Customer").Preload("Professional.User").Preload("Payment").First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	isCustomer := appointment.CustomerID == sess.UserID
	isProfessional := appointment.Professional.UserID == sess.UserID
	if !isCustomer && !isProfessional && !sess.IsAdmin() {
		return nil, ErrUnauthorized
	}

	if err := appointment.CanCancel(); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		appointment.Status = models.StatusCancelled
		if reason != "" {
			appointment.Notes = strings.TrimSpace(
				appointment.Notes + "\n\nCancellation reason: " + reason)
		}
		err := tx.Model(&models.Appointment{}).
			Where("id = ?", appointment.ID).
			Updates(map[string]interface{}{
				"status": appointment.Status,
				"notes":  appointment.Notes,
			}).Error
		if err != nil {
			return err
		}

		if appointment.Payment != nil && appointment.Payment.Status == models.PaymentPaid {
			if err := tx.Model(appointment.Payment).
				Update("status", models.PaymentRefunded).Error; err != nil {
				return err
			}
		}

		cancelledBy := appointment.Professional.User.Name
		notifyUserID := appointment.CustomerID
		if isCustomer {
			cancelledBy = appointment.Customer.Name
			notifyUserID = appointment.Professional.UserID
		}
		message := fmt.Sprintf("Appointment cancelled by %s", cancelledBy)
		if reason != "" {
			message += fmt.Sprintf(". Reason: %s", reason)
		}
		notification := models.Notification{
			UserID:  notifyUserID,
			Type:    models.NotifyEmail,
			Message: message,
			Status:  models.NotificationPending,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(appointment.ID)
}

// Get fetches an appointment with its customer, professional and
// payment details.
func (s *AppointmentService) Get(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Preload("Customer").Preload("Professional.User").Preload("Payment").
		First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// List returns a filtered, paginated page of appointments ordered most
// recent first.
func (s *AppointmentService) List(in *validation.GetAppointmentsInput) ([]models.Appointment, PageInfo, error) {
	query := s.db.Model(&models.Appointment{})
	if in.ProfessionalID != 0 {
		query = query.Where("professional_id = ?", in.ProfessionalID)
	}
	if in.CustomerID != 0 {
		query = query.Where("customer_id = ?", in.CustomerID)
	}
	if in.Status != "" {
		query = query.Where("status = ?", in.Status)
	}
	if in.StartDate != nil {
		query = query.Where("date_time >= ?", *in.StartDate)
	}
	if in.EndDate != nil {
		query = query.Where("date_time <= ?", *in.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageInfo{}, err
	}

	var appointments []models.Appointment
	err := query.
		Preload("Customer").Preload("Professional.User").Preload("Payment").
		Order("date_time DESC, created_at DESC").
		Offset(in.Offset()).Limit(in.Limit).
		Find(&appointments).Error
	if err != nil {
		return nil, PageInfo{}, err
	}

	return appointments, pageInfo(in.Page, in.Limit, total), nil
}

// lockProfessional takes a row lock on the professional for the
// duration of the transaction, serializing concurrent bookings of the
// same professional through the check-then-write sequence.
func lockProfessional(tx *gorm.DB, professionalID uint) error {
	var locked models.Professional
	return tx.Raw(`
		SELECT id
		FROM professionals
		WHERE id = ?
		FOR UPDATE
	`, professionalID).Scan(&locked).Error
}

// checkConflicts rejects the requested slot when any PENDING or
// APPROVED booking of the professional starts inside the symmetric
// conflict window around it. excludeID skips the appointment being
// rescheduled.
func checkConflicts(tx *gorm.DB, professionalID, excludeID uint, dateTime time.Time, duration int) error {
	from, to := scheduling.Window(dateTime, duration)

	var count int64
	err := tx.Model(&models.Appointment{}).
		Where("professional_id = ?", professionalID).
		Where("id <> ?", excludeID).
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusApproved}).
		Where("date_time BETWEEN ? AND ?", from, to).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	return nil
}

func updateNotice(appointment *models.Appointment, actorIsCustomer bool) *models.Notification {
	updatedBy := appointment.Professional.User.Name
	notifyUserID := appointment.CustomerID
	if actorIsCustomer {
		updatedBy = appointment.Customer.Name
		notifyUserID = appointment.Professional.UserID
	}
	return &models.Notification{
		UserID:  notifyUserID,
		Type:    models.NotifyEmail,
		Message: fmt.Sprintf("Appointment updated by %s", updatedBy),
		Status:  models.NotificationPending,
	}
}
