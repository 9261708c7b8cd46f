// Package email sends transactional mail through the Brevo HTTP API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"careers-api/config"
	"careers-api/internal/domain"
)

// requestTimeout bounds the outbound call so a slow provider cannot hang a
// request handler indefinitely.
const requestTimeout = 15 * time.Second

// Client talks to the Brevo v3 smtp/email endpoint.
type Client struct {
	apiKey      string
	apiURL      string
	senderName  string
	senderEmail string
	httpClient  *http.Client
}

// brevoParty is a sender or recipient in the Brevo payload.
type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoAttachment struct {
	Name    string `json:"name"`
	Content string `json:"content"` // base64
}

type brevoMessage struct {
	Sender      brevoParty        `json:"sender"`
	To          []brevoParty      `json:"to"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent"`
	Attachment  []brevoAttachment `json:"attachment,omitempty"`
}

// NewClient creates a Brevo client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:      cfg.BrevoAPIKey,
		apiURL:      cfg.BrevoAPIURL,
		senderName:  cfg.SenderName,
		senderEmail: cfg.SenderEmail,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

// Send posts one message to Brevo. A non-2xx response is an error carrying
// the provider's status and body; callers log it and must not expose it to
// end users.
func (c *Client) Send(ctx context.Context, msg *domain.EmailMessage) error {
	payload := brevoMessage{
		Sender:      brevoParty{Name: c.senderName, Email: c.senderEmail},
		To:          []brevoParty{{Name: msg.ToName, Email: msg.ToEmail}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLContent,
	}
	if msg.Attachment != nil {
		payload.Attachment = []brevoAttachment{{
			Name:    msg.Attachment.Name,
			Content: msg.Attachment.Content,
		}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Brevo error bodies are short JSON; cap the read anyway.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

// IsConfigured checks whether the client has enough configuration to send.
func (c *Client) IsConfigured() bool {
	return c.apiKey != "" && c.senderEmail != ""
}
