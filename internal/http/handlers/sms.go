package handlers

import (
	"adminboard/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/sms/send {recipients, body}
func (a *API) SendSMS(c *gin.Context) {
	var body services.SendSMSInput
	if err := c.ShouldBindJSON(&body); err != nil {
		writeFailure(c, services.ValidationError{"body": "invalid payload"})
		return
	}

	identity, err := callerIdentity(c)
	if err != nil {
		writeFailure(c, err)
		return
	}

	sent, err := a.SMS.Send(identity, body)
	if err != nil {
		writeFailure(c, err)
		return
	}
	ok(c, sent)
}
