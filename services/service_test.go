package services_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/services"
	"github.com/appbook/appbook/validation"
)

// The service suite runs against a real Postgres database and is
// skipped when DATABASE_URL is not set.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = godotenv.Load("../.env")
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Professional{},
		&models.Appointment{},
		&models.Payment{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, role models.Role) *models.User {
	t.Helper()
	user := models.User{
		Name:           fmt.Sprintf("test-%s", uuid.NewString()[:8]),
		Email:          fmt.Sprintf("test-%s@test.com", uuid.NewString()[:8]),
		HashedPassword: "not-a-real-hash",
		Role:           role,
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func createProfessional(t *testing.T, gdb *gorm.DB, user *models.User) *models.Professional {
	t.Helper()
	professional := models.Professional{
		UserID:      user.ID,
		ServiceType: models.ServiceDoctor,
		Location:    "Test City",
		IsActive:    true,
	}
	if err := gdb.Create(&professional).Error; err != nil {
		t.Fatalf("create professional: %v", err)
	}
	return &professional
}

// slot returns a far-future instant offset by the given number of
// minutes, so bookings never collide with other test runs.
func slot(offsetMinutes int) time.Time {
	base := time.Now().Add(90 * 24 * time.Hour).Truncate(time.Hour)
	return base.Add(time.Duration(offsetMinutes) * time.Minute)
}

func customerSession(user *models.User) services.Session {
	return services.Session{UserID: user.ID, Role: user.Role}
}

func bookAppointment(t *testing.T, svc *services.AppointmentService, sess services.Session, professionalID uint, at time.Time) *models.Appointment {
	t.Helper()
	appointment, err := svc.Create(sess, &validation.CreateAppointmentInput{
		ProfessionalID: professionalID,
		ServiceType:    string(models.ServiceDoctor),
		DateTime:       at,
		Duration:       60,
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appointment
}
