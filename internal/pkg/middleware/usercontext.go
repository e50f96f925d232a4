package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/janmeier/inkwell/app/controllers"
	"github.com/janmeier/inkwell/internal/pkg/session"
	"github.com/janmeier/inkwell/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session principal for every request and
// stores it in Locals so handlers never touch the session store directly.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := func() error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		c.Locals(usercontext.KeyFromProtected, false)
		c.Locals(usercontext.KeyIsAdmin, false)
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return anonymous()
	}

	if authed, ok := sess.Get(controllers.AUTH_KEY).(bool); !ok || !authed {
		return anonymous()
	}

	userID := sess.Get(controllers.USER_ID)
	if userID == nil {
		return anonymous()
	}

	username := session.GetSessionValue(c, controllers.USER_NAME)
	isAdmin := sess.Get(controllers.USER_IS_ADMIN)

	userCtx := usercontext.UserContext{
		UserID:     userID.(uint),
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin != nil && isAdmin.(bool),
	}
	c.Locals(usercontext.KeyUserContext, userCtx)
	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyIsAdmin, userCtx.IsAdmin)

	return c.Next()
}
