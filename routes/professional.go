package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/controllers"
	"github.com/appbook/appbook/middleware"
)

// SetupProfessionalRoutes configures all professional related routes
func SetupProfessionalRoutes(app *fiber.App) {
	professional := app.Group("/professionals")
	professional.Get("/", controllers.GetProfessionals)
	professional.Get("/:id", controllers.GetProfessional)
	professional.Post("/", middleware.Protected(), controllers.CreateProfessional)
	professional.Patch("/:id", middleware.Protected(), controllers.UpdateProfessional)
}
