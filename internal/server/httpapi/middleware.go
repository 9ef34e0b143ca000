package httpapi

import (
	"github.com/labstack/echo/v4"
)

// userIDContextKey is the echo context key holding the user id resolved by
// the session gate. Handlers source the current user exclusively from here.
const userIDContextKey = "userID"

// sessionGate resolves the inbound session cookie to a user identity and
// fails closed. A missing cookie is rejected before any storage access; an
// unknown token is rejected after the single lookup. On success the resolved
// user id is attached to the request context.
func (s *Server) sessionGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return s.writeUnauthorized(c)
		}

		user, err := s.users.ResolveSession(c.Request().Context(), cookie.Value)
		if err != nil {
			return s.writeError(c, err)
		}

		c.Set(userIDContextKey, user.ID)
		return next(c)
	}
}

// currentUserID returns the identity attached by sessionGate.
func currentUserID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}
