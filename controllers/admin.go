package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/db"
	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/utils"
	"github.com/appbook/appbook/validation"
)

// GetAdminOverview returns back-office statistics: appointment counts
// by status and collected revenue.
func GetAdminOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalAppointments  int64     `json:"total_appointments"`
		PendingCount       int64     `json:"pending_count"`
		ApprovedCount      int64     `json:"approved_count"`
		CancelledCount     int64     `json:"cancelled_count"`
		CompletedCount     int64     `json:"completed_count"`
		TotalUsers         int64     `json:"total_users"`
		TotalProfessionals int64     `json:"total_professionals"`
		TotalRevenue       float64   `json:"total_revenue"`
		LastUpdated        time.Time `json:"last_updated"`
	}

	appointments := db.DB.Model(&models.Appointment{})
	appointments.Count(&statistics.TotalAppointments)

	countByStatus := func(status models.AppointmentStatus, dst *int64) {
		db.DB.Model(&models.Appointment{}).Where("status = ?", status).Count(dst)
	}
	countByStatus(models.StatusPending, &statistics.PendingCount)
	countByStatus(models.StatusApproved, &statistics.ApprovedCount)
	countByStatus(models.StatusCancelled, &statistics.CancelledCount)
	countByStatus(models.StatusCompleted, &statistics.CompletedCount)

	db.DB.Model(&models.User{}).Count(&statistics.TotalUsers)
	db.DB.Model(&models.Professional{}).Count(&statistics.TotalProfessionals)

	var revenue struct {
		TotalRevenue float64
	}
	db.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(amount), 0) as total_revenue").
		Scan(&revenue)
	statistics.TotalRevenue = revenue.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetUsers lists all accounts for the admin back-office.
func GetUsers(c *fiber.Ctx) error {
	page := validation.Pagination{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", validation.DefaultPageSize),
	}
	page.Normalize(validation.DefaultPageSize)

	var total int64
	db.DB.Model(&models.User{}).Count(&total)

	var users []models.User
	if err := db.DB.
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}

	pages := int((total + int64(page.Limit) - 1) / int64(page.Limit))
	return c.JSON(fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"page":  page.Page,
			"limit": page.Limit,
			"total": total,
			"pages": pages,
		},
	})
}
