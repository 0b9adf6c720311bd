// Package emergency integrates with the external emergency services
// dispatch gateway.
package emergency

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

type httpGateway struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPGateway creates an emergency services gateway client.
func NewHTTPGateway(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) service.EmergencyGateway {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &httpGateway{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type dispatchRequest struct {
	AlertID   string  `json:"alertId"`
	AlertType string  `json:"alertType"`
	Severity  string  `json:"severity"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Message   string  `json:"message,omitempty"`
	IsTest    bool    `json:"isTest"`
}

type dispatchResponse struct {
	ReferenceID string `json:"referenceId"`
}

// Notify forwards a critical alert to the emergency dispatch gateway and
// returns the gateway's reference number for the incident.
func (g *httpGateway) Notify(ctx context.Context, alert *entity.SOSAlert) (string, error) {
	payload := dispatchRequest{
		AlertID:   alert.ID.String(),
		AlertType: string(alert.AlertType),
		Severity:  string(alert.Severity),
		Latitude:  alert.Location.Latitude,
		Longitude: alert.Location.Longitude,
		Address:   alert.Location.Address,
		Message:   alert.Message,
		IsTest:    alert.IsTest,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "emergency gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("emergency gateway returned non-success status: %d", resp.StatusCode)
	}

	var result dispatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode emergency gateway response")
	}

	g.logger.Info("[EmergencyGateway] Dispatch notified",
		slog.String("alert_id", alert.ID.String()),
		slog.String("reference_id", result.ReferenceID),
	)

	return result.ReferenceID, nil
}
