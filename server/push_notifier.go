package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
)

// PushNotifier delivers terminal task envelopes to caller-supplied webhook
// URLs. Delivery is a single attempt within a bounded timeout; failures are
// reported to the caller for logging but never retried, and never affect the
// task's terminal state.
type PushNotifier struct {
	httpClient *http.Client
}

// NewPushNotifier creates a new PushNotifier with the given delivery timeout.
func NewPushNotifier(timeout time.Duration) *PushNotifier {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &PushNotifier{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Push POSTs the terminal JSON-RPC envelope to the configured webhook URL
// with the caller's token as a bearer credential. The body is exactly the
// envelope shape a blocking caller would have received.
func (p *PushNotifier) Push(ctx context.Context, config *a2a.PushNotificationConfig, envelope a2a.JSONRPCResponse) error {
	if config == nil || config.URL == "" {
		return fmt.Errorf("push notification config has no URL")
	}

	jsonData, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal push notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.URL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create push notification request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "country-facts-agent")
	if config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+config.Token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push notification failed with status code %d", resp.StatusCode)
	}

	return nil
}
