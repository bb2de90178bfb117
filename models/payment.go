package models

import (
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentFailed   PaymentStatus = "FAILED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodUPI    PaymentMethod = "UPI"
	MethodCard   PaymentMethod = "CARD"
	MethodWallet PaymentMethod = "WALLET"
	MethodCash   PaymentMethod = "CASH"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodUPI, MethodCard, MethodWallet, MethodCash:
		return true
	}
	return false
}

type Payment struct {
	gorm.Model
	AppointmentID uint          `json:"appointment_id" gorm:"uniqueIndex"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status" gorm:"type:varchar(20)"`
	Method        PaymentMethod `json:"method" gorm:"type:varchar(20)"`
	TransactionID string        `json:"transaction_id,omitempty"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = PaymentPending
	}
	return nil
}
