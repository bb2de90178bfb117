package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/appbook/appbook/cron"
	"github.com/appbook/appbook/db"
	"github.com/appbook/appbook/redis"
	"github.com/appbook/appbook/routes"
)

func main() {
	app := fiber.New()
	if os.Getenv("AUTO_MIGRATE") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AppBook API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupProfessionalRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupPaymentRoutes(app)
	routes.SetupNotificationRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
