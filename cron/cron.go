package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/appbook/appbook/db"
	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/utils"
)

// StartCronJobs runs the notification dispatcher and the appointment
// reminder job.
func StartCronJobs() {
	c := cron.New()

	// Deliver pending notifications every minute.
	_, err := c.AddFunc("* * * * *", dispatchPendingNotifications)
	if err != nil {
		log.Fatalf("Failed to add dispatcher cron job: %v", err)
	}

	// Remind customers of appointments starting in about an hour.
	_, err = c.AddFunc("*/10 * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// dispatchPendingNotifications delivers PENDING notifications and marks
// them SENT or FAILED. The core only records notifications; this is the
// single place that talks to the outside world.
func dispatchPendingNotifications() {
	var notifications []models.Notification
	err := db.DB.Preload("User").
		Where("status = ?", models.NotificationPending).
		Limit(100).
		Find(&notifications).Error
	if err != nil {
		log.Printf("Error fetching pending notifications: %v", err)
		return
	}

	for _, notification := range notifications {
		status := models.NotificationSent
		if notification.Type == models.NotifyEmail {
			if err := sendNotificationEmail(&notification); err != nil {
				log.Printf("Failed to deliver notification %d: %v", notification.ID, err)
				status = models.NotificationFailed
			}
		}
		// SMS and PUSH have no transport wired; they stay visible in
		// the in-app feed and are marked delivered.

		if err := db.DB.Model(&notification).Update("status", status).Error; err != nil {
			log.Printf("Failed to update notification %d: %v", notification.ID, err)
		}
	}
}

func sendNotificationEmail(notification *models.Notification) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<p>Best regards,</p>
		<p>The AppBook Team</p>
	`, notification.User.Name, notification.Message)

	return utils.SendEmail(notification.User.Email, "AppBook Notification", body)
}

// sendAppointmentReminders records reminder notifications for approved
// appointments starting in roughly an hour.
func sendAppointmentReminders() {
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var appointments []models.Appointment
	err := db.DB.Preload("Customer").
		Where("status = ? AND date_time BETWEEN ? AND ?", models.StatusApproved, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		notification := models.Notification{
			UserID: appointment.CustomerID,
			Type:   models.NotifyEmail,
			Message: fmt.Sprintf("Reminder: your %s appointment starts at %s",
				appointment.ServiceType, appointment.DateTime.Format("2006-01-02 15:04")),
			Status: models.NotificationPending,
		}
		if err := db.DB.Create(&notification).Error; err != nil {
			log.Printf("Failed to create reminder for appointment %d: %v", appointment.ID, err)
		}
	}
}
