package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/validation"
)

// ProfessionalService manages service-provider profiles and discovery.
type ProfessionalService struct {
	db *gorm.DB
}

func NewProfessionalService(db *gorm.DB) *ProfessionalService {
	return &ProfessionalService{db: db}
}

// Create registers the caller's professional profile. A user owns at
// most one profile, and only PROFESSIONAL or ADMIN accounts may create
// one.
func (s *ProfessionalService) Create(sess Session, in *validation.CreateProfessionalInput) (*models.Professional, error) {
	if sess.Role != models.RoleProfessional && sess.Role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}

	var existing models.Professional
	err := s.db.Where("user_id = ?", sess.UserID).First(&existing).Error
	if err == nil {
		return nil, ErrProfileExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	professional := models.Professional{
		UserID:         sess.UserID,
		ServiceType:    in.ServiceType,
		Specialization: in.Specialization,
		Location:       in.Location,
		Bio:            in.Bio,
		IsActive:       true,
	}
	if in.WorkingHours != nil {
		professional.WorkingHours = *in.WorkingHours
	}

	if err := s.db.Create(&professional).Error; err != nil {
		return nil, err
	}
	return s.Get(professional.ID)
}

// Update applies partial profile changes for the owner or an admin.
func (s *ProfessionalService) Update(sess Session, id uint, in *validation.UpdateProfessionalInput) (*models.Professional, error) {
	var professional models.Professional
	err := s.db.First(&professional, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if professional.UserID != sess.UserID && !sess.IsAdmin() {
		return nil, ErrUnauthorized
	}

	if in.ServiceType != nil {
		professional.ServiceType = *in.ServiceType
	}
	if in.Specialization != nil {
		professional.Specialization = *in.Specialization
	}
	if in.Location != nil {
		professional.Location = *in.Location
	}
	if in.Bio != nil {
		professional.Bio = *in.Bio
	}
	if in.WorkingHours != nil {
		professional.WorkingHours = *in.WorkingHours
	}
	if in.IsActive != nil {
		professional.IsActive = *in.IsActive
	}

	if err := s.db.Save(&professional).Error; err != nil {
		return nil, err
	}
	return s.Get(professional.ID)
}

// Get fetches a professional with its owning user.
func (s *ProfessionalService) Get(id uint) (*models.Professional, error) {
	var professional models.Professional
	err := s.db.Preload("User").First(&professional, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

// List returns professionals for discovery, best rated first. Inactive
// profiles are hidden unless the filter asks for them.
func (s *ProfessionalService) List(in *validation.GetProfessionalsInput) ([]models.Professional, PageInfo, error) {
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	query := s.db.Model(&models.Professional{}).Where("is_active = ?", isActive)
	if in.ServiceType != "" {
		query = query.Where("service_type = ?", in.ServiceType)
	}
	if in.Location != "" {
		query = query.Where("location ILIKE ?", "%"+in.Location+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PageInfo{}, err
	}

	var professionals []models.Professional
	err := query.
		Preload("User").
		Order("rating DESC, total_reviews DESC, created_at DESC").
		Offset(in.Offset()).Limit(in.Limit).
		Find(&professionals).Error
	if err != nil {
		return nil, PageInfo{}, err
	}

	return professionals, pageInfo(in.Page, in.Limit, total), nil
}
