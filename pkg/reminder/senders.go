package reminder

import (
	"Home-Inventory-Backend/internal/utils/mailing"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sender capabilities are best-effort and non-transactional; a failure never
// touches ledger state, the caller only logs it.
type (
	EmailSender interface {
		Send(toAddress, subject, htmlBody string) error
	}

	WebhookSender interface {
		Send(url, textPayload string) error
	}

	smtpEmailSender struct{}

	webhookSender struct {
		client *http.Client
	}
)

func NewEmailSender() EmailSender {
	return &smtpEmailSender{}
}

func (s *smtpEmailSender) Send(toAddress, subject, htmlBody string) error {
	return mailing.SendMail(toAddress, subject, htmlBody)
}

func NewWebhookSender(timeout time.Duration) WebhookSender {
	return &webhookSender{
		client: &http.Client{Timeout: timeout},
	}
}

// Send posts a WeCom-style text message to the configured webhook URL.
func (s *webhookSender) Send(url, textPayload string) error {
	body, err := json.Marshal(map[string]any{
		"msgtype": "text",
		"text": map[string]string{
			"content": textPayload,
		},
	})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook rejected payload: %s", resp.Status)
	}

	return nil
}
