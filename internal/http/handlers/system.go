package handlers

import (
	"net/http"

	intconfig "adminboard/internal/config"
	intdb "adminboard/internal/db"

	"github.com/gin-gonic/gin"
)

var expectedTables = []string{
	"users", "user_permissions",
	"countries", "states", "cities", "districts",
	"achievements", "team_members", "sections",
	"projects", "sms_messages",
}

// GET /api/health
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check reports DB reachability and which expected tables exist.
func (a *API) DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(a.Env); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}

	missing := []string{}
	for _, t := range expectedTables {
		if !intdb.HasTable(intconfig.DB, t) {
			missing = append(missing, t)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "missingTables": missing})
}
