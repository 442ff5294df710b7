package middleware

import (
	"fence/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HeaderUserNumber carries the caller's phone number. The gateway in front
// of this service authenticates the device and injects the header.
const HeaderUserNumber = "X-User-Number"

// userNumberKey is the echo.Context key the middleware stores the number under.
const userNumberKey = "user_number"

// IdentityMiddleware resolves the calling user from the request headers.
type IdentityMiddleware struct{}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// RequireUser rejects requests that do not carry a caller identity.
func (m *IdentityMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		number := c.Request().Header.Get(HeaderUserNumber)
		if number == "" {
			return response.Unauthorized(c, "MISSING_USER_NUMBER", "caller identity header is required")
		}

		c.Set(userNumberKey, number)

		return next(c)
	}
}

// UserNumber returns the caller's phone number stored by RequireUser.
func UserNumber(c echo.Context) string {
	number, _ := c.Get(userNumberKey).(string)

	return number
}
