package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/db"
	"github.com/appbook/appbook/middleware"
	"github.com/appbook/appbook/services"
	"github.com/appbook/appbook/validation"
)

// CreateProfessional registers the caller's service-provider profile.
func CreateProfessional(c *fiber.Ctx) error {
	var input validation.CreateProfessionalInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewProfessionalService(db.DB)
	professional, err := svc.Create(middleware.Session(c), &input)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(professional)
}

// UpdateProfessional applies partial profile changes.
func UpdateProfessional(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid professional ID", nil)
	}

	var input validation.UpdateProfessionalInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewProfessionalService(db.DB)
	professional, err := svc.Update(middleware.Session(c), id, &input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(professional)
}

// GetProfessional returns one professional with its owning user.
func GetProfessional(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid professional ID", nil)
	}

	svc := services.NewProfessionalService(db.DB)
	professional, err := svc.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(professional)
}

// GetProfessionals lists professionals for discovery.
func GetProfessionals(c *fiber.Ctx) error {
	input := validation.GetProfessionalsInput{
		ServiceType: c.Query("service_type"),
		Location:    c.Query("location"),
	}
	input.Page = c.QueryInt("page", 1)
	input.Limit = c.QueryInt("limit", validation.DefaultPageSize)
	if raw := c.Query("is_active"); raw != "" {
		isActive := raw == "true"
		input.IsActive = &isActive
	}

	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	svc := services.NewProfessionalService(db.DB)
	professionals, page, err := svc.List(&input)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"professionals": professionals,
		"pagination":    page,
	})
}
