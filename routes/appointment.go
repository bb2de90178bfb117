package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/controllers"
	"github.com/appbook/appbook/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())
	appointment.Get("/", controllers.GetAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Patch("/:id", controllers.UpdateAppointment)
	appointment.Post("/:id/cancel", controllers.CancelAppointment)
}
