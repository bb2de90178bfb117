package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/controllers"
	"github.com/appbook/appbook/middleware"
	"github.com/appbook/appbook/models"
)

// SetupPaymentRoutes configures all payment related routes
func SetupPaymentRoutes(app *fiber.App) {
	payment := app.Group("/payments", middleware.Protected())
	payment.Get("/", controllers.GetPayments)
	payment.Post("/", controllers.CreatePayment)
	payment.Patch("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdatePayment)
}
