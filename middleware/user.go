package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the locals key holding the opaque user id.
const UserIDKey = "userid"

// UserID copies the opaque user id from header into the request locals.
// The value is never interpreted, only passed along.
func UserID(header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(UserIDKey, strings.TrimSpace(c.Get(header)))
		return c.Next()
	}
}

// CurrentUserID returns the user id stored by UserID, or "".
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
