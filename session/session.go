// session/session.go
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CookieName is the cookie carrying the caller's identity.
	CookieName = "session"

	contextKey = "session_user"

	cookieMaxAge = 30 * 24 * 60 * 60
)

// User is an opaque caller identity. Two requests carry the same User iff
// they come from the same browser session; the game layers only ever compare
// it for equality.
type User string

func (u User) String() string {
	return string(u)
}

// Generate mints a fresh identity for a caller we have not seen before.
func Generate() User {
	return User(uuid.New().String())
}

// Identify resolves the caller's identity from the session cookie, issuing a
// new one on first contact. Handlers read it back with FromContext.
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(CookieName)
		if err != nil || value == "" {
			user := Generate()
			c.SetCookie(CookieName, user.String(), cookieMaxAge, "/", "", false, true)
			c.Set(contextKey, user)
			c.Next()
			return
		}
		c.Set(contextKey, User(value))
		c.Next()
	}
}

// FromContext returns the identity set by Identify.
func FromContext(c *gin.Context) (User, bool) {
	value, exists := c.Get(contextKey)
	if !exists {
		return "", false
	}
	user, ok := value.(User)
	return user, ok
}

// Require aborts with 401 when no identity middleware ran before the handler.
func Require(c *gin.Context) (User, bool) {
	user, ok := FromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no session"})
	}
	return user, ok
}
