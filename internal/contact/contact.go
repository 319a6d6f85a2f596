// Package contact validates contact-form submissions and relays them to the
// form-relay endpoint.
package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNotConfigured means no relay endpoint is set.
	ErrNotConfigured = errors.New("contact: relay endpoint not configured")
	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("contact: invalid submission")
)

const maxMessageLen = 5000

// Message is one form submission.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Validate trims the fields and checks them.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)

	switch {
	case m.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalid)
	case m.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalid)
	case m.Message == "":
		return fmt.Errorf("%w: message is required", ErrInvalid)
	case len(m.Message) > maxMessageLen:
		return fmt.Errorf("%w: message is too long", ErrInvalid)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: email: %v", ErrInvalid, err)
	}
	return nil
}

// Relay posts submissions to a Formspree-compatible endpoint.
type Relay struct {
	endpoint string
	client   *http.Client
}

// NewRelay returns a relay for endpoint. A nil client gets a default with a
// short timeout.
func NewRelay(endpoint string, client *http.Client) *Relay {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Relay{endpoint: endpoint, client: client}
}

// Send submits m. Any non-2xx response is an error.
func (r *Relay) Send(ctx context.Context, m Message) error {
	if r == nil || r.endpoint == "" {
		return ErrNotConfigured
	}
	form := url.Values{
		"name":    {m.Name},
		"email":   {m.Email},
		"message": {m.Message},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay responded %d", resp.StatusCode)
	}
	return nil
}
