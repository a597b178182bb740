package handlers

import (
	"errors"
	"net/http"

	"adminboard/internal/auth"
	"adminboard/internal/http/middleware"
	"adminboard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Legacy dashboard envs/messages. The UI matches on these strings, so they
// are part of the wire contract.
const (
	msgInvalidToken    = "Invalid Token!"
	msgUserNotFound    = "User not found!"
	msgInvalidFileType = "Invalid file type!"
	nameTokenExpired   = "TokenExpiredError"
)

// Closed set of client-safe internal error codes. Raw causes never leave the
// server.
const (
	codeInternal = "somethingWentWrong"
	codeNotFound = "notFound"
)

func ok(c *gin.Context, message any) {
	c.JSON(http.StatusOK, gin.H{"result": true, "message": message})
}

func okList(c *gin.Context, records any, totalPages int) {
	c.JSON(http.StatusOK, gin.H{"result": true, "message": records, "totalPages": totalPages})
}

// callerIdentity returns the resolved identity, or the token failure the auth
// middleware recorded. Handlers surface that failure before touching the
// store.
func callerIdentity(c *gin.Context) (auth.Identity, error) {
	if err := middleware.GetAuthError(c); err != nil {
		return auth.Identity{}, err
	}
	return middleware.GetIdentity(c), nil
}

// writeFailure maps the error taxonomy onto the envelope shapes the dashboard
// UI matches on. All envelope failures ride HTTP 200, as the legacy API did;
// only the envelope's result flag signals failure.
func writeFailure(c *gin.Context, err error) {
	var fields services.ValidationError

	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusOK, gin.H{"result": false, "message": gin.H{"invalidToken": msgInvalidToken}})

	case errors.Is(err, auth.ErrTokenExpired):
		c.JSON(http.StatusOK, gin.H{"result": false, "message": gin.H{"roleError": gin.H{"name": nameTokenExpired}}})

	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusOK, gin.H{"result": false, "message": gin.H{"userNotFound": msgUserNotFound}})

	case errors.Is(err, services.ErrInvalidFileType):
		c.JSON(http.StatusOK, gin.H{"result": false, "message": gin.H{"invalidFileType": msgInvalidFileType}})

	case errors.As(err, &fields):
		c.JSON(http.StatusOK, gin.H{"result": false, "message": fields})

	case errors.Is(err, services.ErrRecordNotFound):
		c.JSON(http.StatusOK, gin.H{"result": false, "error": gin.H{"code": codeNotFound}})

	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("internal error")
		c.JSON(http.StatusOK, gin.H{"result": false, "error": gin.H{"code": codeInternal}})
	}
}
