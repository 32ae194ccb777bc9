package middleware

import (
	"task_management_ms/config"
	"task_management_ms/services"

	"github.com/gofiber/fiber/v2"
)

const loginPath = "/login"

// UserKey is where RequireAuth stores the resolved user in c.Locals.
const UserKey = "user"

// RequireAuth gates protected routes on a valid session cookie. A browser
// navigation (GET) without one is sent to the login page; any state-changing
// method gets a machine-readable 401 instead.
func RequireAuth(sessions services.ISessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookieName := config.Conf.Application.Security.SessionCookieName

		sessionID := c.Cookies(cookieName)
		if sessionID == "" {
			return rejectUnauthorized(c)
		}

		user, err := sessions.Verify(sessionID)
		if err != nil {
			return rejectUnauthorized(c)
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

func rejectUnauthorized(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodGet {
		return c.Redirect(loginPath)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}
