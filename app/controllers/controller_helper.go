package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/janmeier/inkwell/internal/pkg/usercontext"
)

// Session keys shared with the user-context middleware.
const (
	AUTH_KEY      string = "authenticated"
	USER_ID       string = "user_id"
	USER_NAME     string = "username"
	USER_IS_ADMIN string = "isAdmin"
)

// baseViewData returns the view data every layout-rendered page needs.
func baseViewData(c *fiber.Ctx, title string) fiber.Map {
	userCtx := usercontext.GetUserContext(c)

	return fiber.Map{
		"Title":      title,
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"IsAdmin":    userCtx.IsAdmin,
		"Flash":      flash.Get(c),
	}
}

// renderNotFound renders the generic not-found page. Every missing group,
// post or user resolves here.
func renderNotFound(c *fiber.Ctx) error {
	data := baseViewData(c, " | Not Found")

	return c.Status(fiber.StatusNotFound).Render("errors/404", data, "layouts/main")
}

// HandleNotFound is the terminal handler for unknown paths.
func HandleNotFound(c *fiber.Ctx) error {
	return renderNotFound(c)
}

// safeNext sanitizes a post-login return path. Only site-local paths are
// followed; anything else falls back to the home page.
func safeNext(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	return raw
}
