// path: routes/routes.go
package routes

import (
	"pestreport/controllers"

	"github.com/gofiber/fiber/v2"
)

// Register attaches all API endpoints to the app.
func Register(app *fiber.App, d *controllers.Deps) {
	app.Post("/submit-report", d.HandleSubmitReport)

	api := app.Group("/api")
	api.Get("/reports", d.HandleListSubmissions)
}
