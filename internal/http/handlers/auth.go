package handlers

import (
	"errors"
	"net/http"
	"strings"

	"adminboard/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	token, user, err := a.Users.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"result": false, "error": gin.H{"code": "invalidCredentials"}})
			return
		}
		writeFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"message": gin.H{
			"token": token,
			"user":  user,
			// where the UI sends the browser after a forced sign-out
			"signOutURL": a.Env.AppBaseURL,
		},
	})
}

// GET /api/users/me
func (a *API) Profile(c *gin.Context) {
	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	user, err := a.Users.Profile(identity)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, user)
}

// GET /api/users/permissions?screen=masterSettings
func (a *API) Permissions(c *gin.Context) {
	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	screen := strings.TrimSpace(c.Query("screen"))
	if screen == "" {
		writeFailure(c, services.ValidationError{"screen": "screen is required"})
		return
	}

	perms, err := a.Users.Permissions(identity, screen)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, perms)
}
