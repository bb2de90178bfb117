package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appbook/appbook/controllers"
	"github.com/appbook/appbook/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/signup", controllers.Signup)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Post("/me/picture", middleware.Protected(), controllers.UploadProfilePicture)
}
