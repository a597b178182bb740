package middleware

import (
	"adminboard/internal/auth"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Auth resolves the bearer credential into an Identity and stores it in the
// context. Resolution is best-effort: a missing or broken token leaves the
// zero Identity in place and lets the service layer produce the
// invalidToken/tokenExpired failure shape the dashboard expects, so the
// middleware never aborts.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := auth.FromHeader(c.GetHeader("Authorization"))

		identity, err := auth.Parse(secret, raw)
		if err != nil {
			c.Set(identityKey, auth.Identity{})
			c.Set(authErrKey, err)
			c.Next()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

const authErrKey = "auth_error"

// GetIdentity returns the resolved Identity, zero when the token was absent
// or unusable.
func GetIdentity(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(auth.Identity); ok {
			return id
		}
	}
	return auth.Identity{}
}

// GetAuthError reports why token resolution failed, if it did.
func GetAuthError(c *gin.Context) error {
	if v, ok := c.Get(authErrKey); ok {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}
