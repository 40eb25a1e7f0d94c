// Package middleware provides HTTP middleware components for the application.
//
// The session cookie is a grouping key, not an identity: anyone holding a
// token can act as that session, and unless strict session scope is enabled
// any session can read, update or delete a transaction whose id it knows.
package middleware

import (
	"log"
	"time"

	"ledger/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName = "sessionId"
	// SessionMaxAge is how long a minted session cookie lives.
	SessionMaxAge = 7 * 24 * time.Hour

	sessionLocalsKey = "sessionID"
)

// SessionMiddleware resolves the session token of each request.
type SessionMiddleware struct {
	secure   bool
	newToken func() string
}

// NewSessionMiddleware returns a resolver minting UUID tokens. secure marks
// minted cookies Secure, for HTTPS deployments.
func NewSessionMiddleware(secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		secure:   secure,
		newToken: uuid.NewString,
	}
}

// Resolve reuses the request's session token or mints a new one, setting it
// as a cookie on the response. Exactly one cookie is set per request without
// a token and none otherwise.
func (m *SessionMiddleware) Resolve(c *fiber.Ctx) error {
	sessionID := utils.CopyString(c.Cookies(SessionCookieName))

	if sessionID == "" {
		sessionID = m.newToken()
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(SessionMaxAge / time.Second),
			Expires:  time.Now().Add(SessionMaxAge),
			Secure:   m.secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	c.Locals(sessionLocalsKey, sessionID)
	return c.Next()
}

// Require rejects requests without a session cookie with 401.
func (m *SessionMiddleware) Require(c *fiber.Ctx) error {
	sessionID := utils.CopyString(c.Cookies(SessionCookieName))
	if sessionID == "" {
		log.Printf("Missing session cookie on %s %s", c.Method(), c.Path())
		return response.Unauthorized(c)
	}

	c.Locals(sessionLocalsKey, sessionID)
	return c.Next()
}

// SessionID returns the token resolved by Resolve or Require.
func SessionID(c *fiber.Ctx) string {
	sessionID, _ := c.Locals(sessionLocalsKey).(string)
	return sessionID
}
