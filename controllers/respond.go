package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/services"
	"github.com/appbook/appbook/utils"
	"github.com/appbook/appbook/validation"
)

// fail maps service and validation errors onto HTTP statuses and the
// shared error envelope.
func fail(c *fiber.Ctx, err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Message: "Invalid input provided",
			Errors:  fieldErrs,
		})
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrProfessionalInactive):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrPaymentExists),
		errors.Is(err, services.ErrProfileExists):
		status = fiber.StatusConflict
	case errors.Is(err, models.ErrAlreadyCancelled),
		errors.Is(err, models.ErrCancelCompleted),
		errors.Is(err, models.ErrInvalidTransition):
		status = fiber.StatusUnprocessableEntity
	}

	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(utils.ErrorResponse{
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
	return c.Status(status).JSON(utils.ErrorResponse{Message: err.Error()})
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	resp := utils.ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

// paramID parses a numeric path parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
