package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/janmeier/inkwell/app/controllers"
	"github.com/janmeier/inkwell/internal/pkg/middleware"
)

func (h HttpRouter) registerProtectedRoutes(app *fiber.App) {
	app.Get("/create", middleware.RequireAuth, controllers.HandlePostCreate)
	app.Post("/create", middleware.RequireAuth, controllers.HandlePostCreate)

	app.Get("/posts/:id/edit", middleware.RequireAuth, controllers.HandlePostEdit)
	app.Post("/posts/:id/edit", middleware.RequireAuth, controllers.HandlePostEdit)
	app.Post("/posts/:id/comment", middleware.RequireAuth, controllers.HandleAddComment)

	app.Get("/follow", middleware.RequireAuth, controllers.HandleFollowIndex)
	app.Get("/profile/:username/follow", middleware.RequireAuth, controllers.HandleProfileFollow)
	app.Get("/profile/:username/unfollow", middleware.RequireAuth, controllers.HandleProfileUnfollow)
}
