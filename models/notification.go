package models

import (
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifyEmail NotificationType = "EMAIL"
	NotifySMS   NotificationType = "SMS"
	NotifyPush  NotificationType = "PUSH"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotifyEmail, NotifySMS, NotifyPush:
		return true
	}
	return false
}

type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "SENT"
	NotificationPending NotificationStatus = "PENDING"
	NotificationFailed  NotificationStatus = "FAILED"
)

type Notification struct {
	gorm.Model
	UserID  uint               `json:"user_id" gorm:"index"`
	User    User               `json:"-" gorm:"foreignKey:UserID"`
	Type    NotificationType   `json:"type" gorm:"type:varchar(10)"`
	Message string             `json:"message"`
	Status  NotificationStatus `json:"status" gorm:"type:varchar(10);index"`
	IsRead  bool               `json:"is_read" gorm:"default:false;index"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.Status == "" {
		n.Status = NotificationPending
	}
	return nil
}
