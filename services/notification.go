package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/validation"
)

// NotificationService serves a user's own notification feed. Creation
// happens inside the appointment and payment transactions; delivery is
// the dispatcher's job.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// List returns the caller's notifications, unread first, plus the
// total unread count.
func (s *NotificationService) List(sess Session, in *validation.GetNotificationsInput) ([]models.Notification, int64, PageInfo, error) {
	query := s.db.Model(&models.Notification{}).Where("user_id = ?", sess.UserID)
	if in.IsRead != nil {
		query = query.Where("is_read = ?", *in.IsRead)
	}
	if in.Type != "" {
		query = query.Where("type = ?", in.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, PageInfo{}, err
	}

	var unread int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", sess.UserID, false).
		Count(&unread).Error
	if err != nil {
		return nil, 0, PageInfo{}, err
	}

	var notifications []models.Notification
	err = query.
		Order("is_read ASC, created_at DESC").
		Offset(in.Offset()).Limit(in.Limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, PageInfo{}, err
	}

	return notifications, unread, pageInfo(in.Page, in.Limit, total), nil
}

// MarkRead flags a notification as read. Only the recipient may do so;
// anyone else sees not-found.
func (s *NotificationService) MarkRead(sess Session, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := s.db.First(&notification, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if notification.UserID != sess.UserID {
		return nil, ErrNotFound
	}

	if err := s.db.Model(&notification).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	notification.IsRead = true
	return &notification, nil
}
