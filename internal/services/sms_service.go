package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"adminboard/internal/auth"
	"adminboard/internal/domain/models"
	"adminboard/internal/listing"
	"adminboard/internal/repositories"
	"adminboard/internal/utils"

	"github.com/rs/zerolog/log"
)

// SMSService backs the messaging screen: it records every outgoing message
// and forwards it to the configured gateway. Gateway failures are recorded on
// the message row, never surfaced as an internal error.
type SMSService struct {
	Lists      ListService
	SMS        repositories.SMSRepository
	GatewayURL string
	HTTPClient *http.Client
}

type SendSMSInput struct {
	Recipients string `json:"recipients"`
	Body       string `json:"body"`
}

func (s SMSService) List(identity auth.Identity, p listing.Params) (listing.Page[models.SMSMessage], error) {
	return ListRecords(s.Lists, identity, p, s.SMS.List)
}

// Send fans one message body out to each recipient and returns per-recipient
// statuses.
func (s SMSService) Send(identity auth.Identity, in SendSMSInput) ([]models.SMSMessage, error) {
	if err := s.Lists.requireUser(identity); err != nil {
		return nil, err
	}

	body := utils.TrimOrEmpty(in.Body)
	recipients := utils.SplitList(in.Recipients)

	fields := ValidationError{}
	if body == "" {
		fields["body"] = "body is required"
	}
	if len(recipients) == 0 {
		fields["recipients"] = "at least one recipient is required"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	out := make([]models.SMSMessage, 0, len(recipients))
	for _, to := range recipients {
		status := models.SMSStatusSent
		if err := s.deliver(to, body); err != nil {
			status = models.SMSStatusFailed
			log.Warn().Err(err).Str("recipient", to).Msg("sms gateway delivery failed")
		}

		id, err := s.SMS.Insert(to, body, status, identity.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.SMSMessage{
			ID:        id,
			Recipient: to,
			Body:      body,
			Status:    status,
			SentAt:    time.Now().Format("2006-01-02 15:04:05"),
		})
	}
	return out, nil
}

func (s SMSService) deliver(to, body string) error {
	if s.GatewayURL == "" {
		// No gateway configured: record only.
		return nil
	}

	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}

	payload, _ := json.Marshal(map[string]string{"to": to, "body": body})
	resp, err := client.Post(s.GatewayURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return &gatewayError{status: resp.StatusCode}
	}
	return nil
}

type gatewayError struct {
	status int
}

func (e *gatewayError) Error() string {
	return fmt.Sprintf("sms gateway returned status %d", e.status)
}
