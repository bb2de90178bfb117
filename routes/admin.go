package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/controllers"
	"github.com/appbook/appbook/middleware"
	"github.com/appbook/appbook/models"
)

// SetupAdminRoutes configures the admin back-office routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	admin.Get("/overview", controllers.GetAdminOverview)
	admin.Get("/users", controllers.GetUsers)
}
