package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrSenderDisabled = errors.New("sms sender disabled")

// TwilioSender delivers messages through the Twilio Messages REST API.
// If no credentials are configured the sender is disabled and Send fails
// fast, so the dashboard can still preview and copy message text.
type TwilioSender struct {
	client              *http.Client
	baseURL             string
	accountSID          string
	authToken           string
	fromNumber          string
	messagingServiceSID string
	enabled             bool
}

// NewTwilioSender creates a Twilio sender. Either fromNumber or
// messagingServiceSID must be set alongside the account credentials.
func NewTwilioSender(accountSID, authToken, fromNumber, messagingServiceSID string) *TwilioSender {
	enabled := accountSID != "" && authToken != "" && (fromNumber != "" || messagingServiceSID != "")
	if !enabled {
		log.Println("SMS sender disabled: Twilio credentials not configured")
	}
	return &TwilioSender{
		client:              &http.Client{Timeout: 15 * time.Second},
		baseURL:             "https://api.twilio.com",
		accountSID:          accountSID,
		authToken:           authToken,
		fromNumber:          fromNumber,
		messagingServiceSID: messagingServiceSID,
		enabled:             enabled,
	}
}

// IsEnabled returns whether the sender has usable credentials
func (s *TwilioSender) IsEnabled() bool {
	return s.enabled
}

// Send posts one SMS and returns the provider message SID
func (s *TwilioSender) Send(ctx context.Context, to, body string) (string, error) {
	if !s.enabled {
		return "", ErrSenderDisabled
	}

	form := url.Values{}
	form.Set("To", to)
	if s.fromNumber != "" {
		form.Set("From", s.fromNumber)
	} else {
		form.Set("MessagingServiceSid", s.messagingServiceSID)
	}
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build twilio request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("failed to read twilio response: %w", err)
	}

	var result struct {
		SID     string `json:"sid"`
		Message string `json:"message"`
	}
	// Twilio errors still return JSON; decode best-effort for the message
	_ = json.Unmarshal(payload, &result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if result.Message != "" {
			return "", fmt.Errorf("twilio send failed (%d): %s", resp.StatusCode, result.Message)
		}
		return "", fmt.Errorf("twilio send failed with status %d", resp.StatusCode)
	}

	log.Printf("SMS sent: to=%s, sid=%s", to, result.SID)
	return result.SID, nil
}
