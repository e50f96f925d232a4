package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/janmeier/inkwell/app/controllers"
	"github.com/janmeier/inkwell/internal/pkg/cache"
	"github.com/janmeier/inkwell/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Home listing: the unpaginated index sits behind the page snapshot,
	// filtered listings are always rendered fresh.
	app.Get("/", cache.PageSnapshot(cache.HomePageKey, cache.HomePageTTL), controllers.HandlePostIndex)

	app.Get("/group/:slug", controllers.HandleGroupIndex)
	app.Get("/profile/:username", controllers.HandleUserProfile)
	app.Get("/posts/:id", controllers.HandlePostDetail)

	// Auth
	app.Get("/login", controllers.HandleAuthLogin)
	app.Post("/login", controllers.HandleAuthLogin)
	app.Get("/register", controllers.HandleAuthRegister)
	app.Post("/register", controllers.HandleAuthRegister)
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)
}
