package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/janmeier/inkwell/app/controllers"
	"github.com/janmeier/inkwell/app/repository"
	"github.com/janmeier/inkwell/internal/pkg/database"
	"github.com/janmeier/inkwell/internal/pkg/middleware"
	"github.com/janmeier/inkwell/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// repositories over the global database handle
	repository.InitializeFactory(database.GetDB())

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
	h.registerProtectedRoutes(app)
	h.registerAdminRoutes(app)

	// Everything unmatched ends on the not-found page
	app.Use(controllers.HandleNotFound)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
