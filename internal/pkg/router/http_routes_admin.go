package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/janmeier/inkwell/app/controllers"
	"github.com/janmeier/inkwell/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.RequireAdmin)

	admin.Get("/groups", controllers.HandleAdminGroups)
	admin.Post("/groups", controllers.HandleAdminGroupCreate)
	admin.Post("/groups/:id/delete", controllers.HandleAdminGroupDelete)
	admin.Post("/posts/:id/delete", controllers.HandleAdminPostDelete)
}
