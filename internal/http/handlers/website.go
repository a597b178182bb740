package handlers

import (
	"adminboard/internal/domain/models"
	"adminboard/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/website-settings/achievements (create when id is absent, update
// otherwise; image travels as a base64 data URL)
func (a *API) SaveAchievement(c *gin.Context) {
	var body services.AchievementInput
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	id, err := a.Website.SaveAchievement(identity, body)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}

// POST /api/website-settings/team
func (a *API) SaveTeamMember(c *gin.Context) {
	var body services.TeamMemberInput
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	id, err := a.Website.SaveTeamMember(identity, body)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}

// GET /api/website-settings/sections
func (a *API) ListSections(c *gin.Context) {
	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	sections, err := a.Website.ListSections(identity)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, sections)
}

// PUT /api/website-settings/sections/visibility {id, visible}
func (a *API) SetSectionVisibility(c *gin.Context) {
	var body struct {
		ID      int64        `json:"id"`
		Visible models.YesNo `json:"visible"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	if err := a.Website.SetSectionVisibility(identity, body.ID, body.Visible); err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, "section updated")
}
