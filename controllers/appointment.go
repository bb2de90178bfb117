package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/db"
	"github.com/appbook/appbook/middleware"
	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/services"
	"github.com/appbook/appbook/validation"
)

func appointmentStatusQuery(c *fiber.Ctx) models.AppointmentStatus {
	return models.AppointmentStatus(c.Query("status"))
}

// CreateAppointment books a new appointment for the authenticated
// customer.
func CreateAppointment(c *fiber.Ctx) error {
	var input validation.CreateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewAppointmentService(db.DB)
	appointment, err := svc.Create(middleware.Session(c), &input)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointment applies partial changes to an appointment.
func UpdateAppointment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid appointment ID", nil)
	}

	var input validation.UpdateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewAppointmentService(db.DB)
	appointment, err := svc.Update(middleware.Session(c), id, &input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(appointment)
}

// CancelAppointment cancels an appointment with an optional reason.
func CancelAppointment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid appointment ID", nil)
	}

	var input validation.CancelAppointmentInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, "Failed to parse request body", err)
		}
	}

	svc := services.NewAppointmentService(db.DB)
	appointment, err := svc.Cancel(middleware.Session(c), id, input.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(appointment)
}

// GetAppointment returns one appointment with nested details.
func GetAppointment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid appointment ID", nil)
	}

	svc := services.NewAppointmentService(db.DB)
	appointment, err := svc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(appointment)
}

// GetAppointments returns a filtered, paginated appointment listing.
func GetAppointments(c *fiber.Ctx) error {
	input := validation.GetAppointmentsInput{
		ProfessionalID: uint(c.QueryInt("professional_id")),
		CustomerID:     uint(c.QueryInt("customer_id")),
	}
	input.Status = appointmentStatusQuery(c)
	input.Page = c.QueryInt("page", 1)
	input.Limit = c.QueryInt("limit", validation.DefaultPageSize)

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "Invalid start_date", err)
		}
		input.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "Invalid end_date", err)
		}
		input.EndDate = &t
	}

	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewAppointmentService(db.DB)
	appointments, page, err := svc.List(&input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"appointments": appointments,
		"pagination":   page,
	})
}
