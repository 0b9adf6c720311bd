package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

// webhookChannel implements NotificationChannel by relaying messages to the
// marketplace's notification gateway over HTTP. The gateway owns the actual
// SMS and email delivery.
type webhookChannel struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookChannel creates a new webhook-backed notification channel
func NewWebhookChannel(endpoint string, timeout time.Duration, logger *slog.Logger) service.NotificationChannel {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &webhookChannel{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type relayRequest struct {
	Channel string `json:"channel"`
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
	AlertID string `json:"alertId"`
}

// Send relays a single channel message to the notification gateway.
func (c *webhookChannel) Send(ctx context.Context, message *service.ChannelMessage) error {
	payload := relayRequest{
		Channel: message.Channel,
		To:      message.To,
		Subject: message.Subject,
		Body:    message.Body,
		AlertID: message.AlertID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to relay notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("notification gateway returned non-success status: %d", resp.StatusCode)
	}

	c.logger.Debug("[NotifyRelay] Message relayed",
		slog.String("channel", message.Channel),
		slog.String("alert_id", message.AlertID),
	)

	return nil
}
