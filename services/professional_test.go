package services_test

import (
	"errors"
	"testing"

	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/services"
	"github.com/appbook/appbook/validation"
)

func TestCreateProfessionalProfile(t *testing.T) {
	gdb := setupDB(t)
	svc := services.NewProfessionalService(gdb)

	owner := createUser(t, gdb, models.RoleProfessional)

	professional, err := svc.Create(customerSession(owner), &validation.CreateProfessionalInput{
		ServiceType:    models.ServiceSalon,
		Specialization: "Hair",
		Location:       "Bangalore",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if !professional.IsActive {
		t.Error("new profile should be active")
	}
	if professional.WorkingHours.Start != "09:00" || len(professional.WorkingHours.Days) == 0 {
		t.Errorf("expected default working hours, got %+v", professional.WorkingHours)
	}

	// One profile per user.
	_, err = svc.Create(customerSession(owner), &validation.CreateProfessionalInput{
		ServiceType: models.ServiceSpa,
		Location:    "Bangalore",
	})
	if !errors.Is(err, services.ErrProfileExists) {
		t.Errorf("expected ErrProfileExists, got %v", err)
	}

	// Plain users cannot create profiles.
	user := createUser(t, gdb, models.RoleUser)
	_, err = svc.Create(customerSession(user), &validation.CreateProfessionalInput{
		ServiceType: models.ServiceGym,
		Location:    "Bangalore",
	})
	if !errors.Is(err, services.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateProfessionalPermissions(t *testing.T) {
	gdb := setupDB(t)
	svc := services.NewProfessionalService(gdb)

	owner := createUser(t, gdb, models.RoleProfessional)
	professional := createProfessional(t, gdb, owner)
	stranger := createUser(t, gdb, models.RoleProfessional)

	bio := "Updated bio"
	_, err := svc.Update(customerSession(stranger), professional.ID, &validation.UpdateProfessionalInput{Bio: &bio})
	if !errors.Is(err, services.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	updated, err := svc.Update(customerSession(owner), professional.ID, &validation.UpdateProfessionalInput{Bio: &bio})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Bio != bio {
		t.Errorf("bio = %q, want %q", updated.Bio, bio)
	}
}

func TestListProfessionalsFilters(t *testing.T) {
	gdb := setupDB(t)
	svc := services.NewProfessionalService(gdb)

	owner := createUser(t, gdb, models.RoleProfessional)
	professional := createProfessional(t, gdb, owner)

	// Location filter is a case-insensitive substring match.
	input := validation.GetProfessionalsInput{Location: "test cit"}
	input.Page = 1
	input.Limit = 100
	professionals, _, err := svc.List(&input)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := false
	for _, p := range professionals {
		if p.ID == professional.ID {
			found = true
			if p.User.ID != owner.ID {
				t.Error("expected nested user details")
			}
		}
	}
	if !found {
		t.Error("expected the created professional in the location-filtered listing")
	}

	// Inactive profiles are hidden by default.
	if err := gdb.Model(professional).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	professionals, _, err = svc.List(&input)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range professionals {
		if p.ID == professional.ID {
			t.Error("inactive professional should be hidden by default")
		}
	}
}

func TestNotificationOwnership(t *testing.T) {
	gdb := setupDB(t)
	svc := services.NewNotificationService(gdb)

	recipient := createUser(t, gdb, models.RoleUser)
	other := createUser(t, gdb, models.RoleUser)

	notification := models.Notification{
		UserID:  recipient.ID,
		Type:    models.NotifyEmail,
		Message: "test message",
	}
	if err := gdb.Create(&notification).Error; err != nil {
		t.Fatalf("create notification: %v", err)
	}

	_, err := svc.MarkRead(customerSession(other), notification.ID)
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign notification, got %v", err)
	}

	read, err := svc.MarkRead(customerSession(recipient), notification.ID)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !read.IsRead {
		t.Error("notification should be marked read")
	}

	notifications, unread, page, err := svc.List(customerSession(recipient), &validation.GetNotificationsInput{
		Pagination: validation.Pagination{Page: 1, Limit: 20},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total < 1 || len(notifications) == 0 {
		t.Error("expected at least one notification in the feed")
	}
	if unread != 0 {
		t.Errorf("unread = %d, want 0 after marking read", unread)
	}
	for _, n := range notifications {
		if n.UserID != recipient.ID {
			t.Error("feed should only contain the caller's notifications")
		}
	}
}
