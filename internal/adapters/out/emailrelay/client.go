// Package emailrelay sends templated emails through the hosted relay's HTTP
// API. The relay substitutes flat template variables server-side; this
// adapter only posts the send request and classifies the response.
package emailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError is returned when the relay rejects a send request. It carries
// the HTTP status and the relay's response text so callers can log the exact
// rejection.
type StatusError struct {
	Status int
	Text   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("email relay rejected request: %d %s", e.Status, e.Text)
}

// sendRequest is the relay's send payload: account identifiers plus the flat
// template variables.
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Client implements the Notifier port against the relay's HTTP API.
type Client struct {
	baseURL   string
	serviceID string
	userID    string
	http      *http.Client
}

// NewClient creates a relay client. baseURL is the relay origin without a
// trailing slash; serviceID and userID identify the relay account.
func NewClient(baseURL, serviceID, userID string) *Client {
	return &Client{
		baseURL:   baseURL,
		serviceID: serviceID,
		userID:    userID,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Send posts one templated email to the relay. A non-2xx response becomes a
// StatusError carrying the relay's status and body text.
func (c *Client) Send(ctx context.Context, templateID string, params map[string]string) error {
	payload, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.userID,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/v1.0/email/send", bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			Status: resp.StatusCode,
			Text:   string(bytes.TrimSpace(body)),
		}
	}

	return nil
}
