package cache

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// HomePageKey is the fixed cache key for the unfiltered home listing.
	HomePageKey = "pagecache:home"

	// HomePageTTL is how long a rendered home listing snapshot stays valid.
	// Invalidation is time-only; writes during the window are not reflected
	// until the snapshot expires.
	HomePageTTL = 20 * time.Second

	// flashCookieName is the cookie sujit-baniya/flash stores pending
	// messages in.
	flashCookieName = "fiber-app-flash"
)

// PageSnapshot caches the rendered output of a GET handler under a fixed key.
// Requests carrying an explicit page parameter bypass the snapshot, so only
// the plain index view is ever cached. Requests carrying a pending flash
// message also bypass it, both ways: their render contains a one-shot banner
// that must not be stored, and the banner must not be swallowed by a replay.
// A cache backend failure falls through to direct rendering.
func PageSnapshot(key string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet || c.Query("page") != "" || c.Cookies(flashCookieName) != "" {
			return c.Next()
		}

		if body, err := Get(key); err == nil && body != "" {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.SendString(body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			_ = Set(key, string(c.Response().Body()), ttl)
		}

		return nil
	}
}
