package db

import (
	"fmt"
	"log"

	"github.com/appbook/appbook/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Professional{},
		&models.Appointment{},
		&models.Payment{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
