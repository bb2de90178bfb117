package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/db"
	"github.com/appbook/appbook/middleware"
	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/services"
	"github.com/appbook/appbook/validation"
)

// GetNotifications returns the caller's notification feed, unread
// first.
func GetNotifications(c *fiber.Ctx) error {
	input := validation.GetNotificationsInput{
		Type: models.NotificationType(c.Query("type")),
	}
	input.Page = c.QueryInt("page", 1)
	input.Limit = c.QueryInt("limit", 20)
	if raw := c.Query("is_read"); raw != "" {
		isRead := raw == "true"
		input.IsRead = &isRead
	}

	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewNotificationService(db.DB)
	notifications, unread, page, err := svc.List(middleware.Session(c), &input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"notifications": notifications,
		"unreadCount":   unread,
		"pagination":    page,
	})
}

// MarkNotificationRead flags one of the caller's notifications as
// read.
func MarkNotificationRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid notification ID", nil)
	}

	svc := services.NewNotificationService(db.DB)
	notification, err := svc.MarkRead(middleware.Session(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(notification)
}
