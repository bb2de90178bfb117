package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceDoctor     ServiceType = "Doctor"
	ServiceDentist    ServiceType = "Dentist"
	ServiceSalon      ServiceType = "Salon"
	ServiceSpa        ServiceType = "Spa"
	ServiceGym        ServiceType = "Gym"
	ServiceConsultant ServiceType = "Consultant"
	ServiceTherapist  ServiceType = "Therapist"
	ServiceTrainer    ServiceType = "Trainer"
	ServiceOther      ServiceType = "Other"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceDoctor, ServiceDentist, ServiceSalon, ServiceSpa, ServiceGym,
		ServiceConsultant, ServiceTherapist, ServiceTrainer, ServiceOther:
		return true
	}
	return false
}

// WorkingHours stores a professional's weekly availability as JSONB.
// Start and End use the "HH:MM" 24h format.
type WorkingHours struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
}

// Value implements the driver.Valuer interface
func (w WorkingHours) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (w *WorkingHours) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal WorkingHours: unsupported type %T", value)
	}

	return json.Unmarshal(data, w)
}

// DefaultWorkingHours is applied when a professional profile is created
// without explicit hours.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Start: "09:00",
		End:   "18:00",
		Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	}
}

type Professional struct {
	gorm.Model
	UserID         uint         `json:"user_id" gorm:"uniqueIndex"`
	User           User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ServiceType    ServiceType  `json:"service_type" gorm:"type:varchar(20)"`
	Specialization string       `json:"specialization,omitempty"`
	Location       string       `json:"location"`
	Bio            string       `json:"bio,omitempty"`
	WorkingHours   WorkingHours `json:"working_hours" gorm:"type:jsonb"`
	Rating         float64      `json:"rating" gorm:"default:0"`
	TotalReviews   int          `json:"total_reviews" gorm:"default:0"`
	IsActive       bool         `json:"is_active" gorm:"default:true"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.WorkingHours.Start == "" && p.WorkingHours.End == "" {
		p.WorkingHours = DefaultWorkingHours()
	}
	return nil
}
