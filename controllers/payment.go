package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/db"
	"github.com/appbook/appbook/middleware"
	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/services"
	"github.com/appbook/appbook/validation"
)

// CreatePayment records a payment for an appointment.
func CreatePayment(c *fiber.Ctx) error {
	var input validation.CreatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewPaymentService(db.DB)
	payment, err := svc.Create(middleware.Session(c), &input)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// UpdatePayment is the gateway-callback surface; admin only.
func UpdatePayment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid payment ID", nil)
	}

	var input validation.UpdatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewPaymentService(db.DB)
	payment, err := svc.Update(middleware.Session(c), id, &input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(payment)
}

// GetPayments lists the caller's payments, role-scoped.
func GetPayments(c *fiber.Ctx) error {
	input := validation.GetPaymentsInput{
		Status: models.PaymentStatus(c.Query("status")),
	}
	input.Page = c.QueryInt("page", 1)
	input.Limit = c.QueryInt("limit", validation.DefaultPageSize)

	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewPaymentService(db.DB)
	payments, page, err := svc.List(middleware.Session(c), &input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"payments":   payments,
		"pagination": page,
	})
}
