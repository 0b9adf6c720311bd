// Package handler contains the Pub/Sub push message handlers of the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages for responder paging
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	pushSvc        service.PushService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	PushSvc service.PushService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		pushSvc:        params.PushSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse alert event
	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse alert event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("alert_id", event.AlertID),
		slog.String("event_type", event.EventType),
		slog.Int("responder_token_count", len(event.ResponderTokens)),
	)

	// Page the responders
	if err := h.processAlertEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process alert event",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event processed successfully",
		slog.String("alert_id", event.AlertID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AlertEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processAlertEvent pages the pre-selected responders for an alert event.
// Events without tokens (acknowledged, resolved, or no one in range) are
// acked without work.
func (h *PushHandler) processAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if len(event.ResponderTokens) == 0 {
		logger.Info("[Worker] No responder tokens in event, nothing to page",
			slog.String("alert_id", event.AlertID),
			slog.String("event_type", event.EventType),
		)

		return nil
	}

	title, body, data := preparePageContent(event)

	successCount, failureCount, invalidTokens, err := h.pushSvc.SendBatchPush(
		ctx, event.ResponderTokens, title, body, data,
	)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(invalidTokens) > 0 {
		logger.Warn("[Worker] Dropped invalid responder tokens",
			slog.String("alert_id", event.AlertID),
			slog.Int("invalid_count", len(invalidTokens)),
		)
	}

	logger.Info("[Worker] Responder paging completed",
		slog.String("alert_id", event.AlertID),
		slog.Int("total_sent", successCount),
		slog.Int("total_failed", failureCount),
	)

	return nil
}

// preparePageContent creates the push notification title, body, and data
func preparePageContent(event *service.AlertEvent) (title, body string, data map[string]string) {
	switch event.EventType {
	case service.AlertEventEscalated:
		title = fmt.Sprintf("SOS escalation (level %d)", event.EscalationLevel)
	default:
		title = "SOS alert nearby"
	}

	location := event.Address
	if location == "" {
		location = fmt.Sprintf("%.5f, %.5f", event.Latitude, event.Longitude)
	}

	body = fmt.Sprintf("%s emergency (%s severity) near %s", event.AlertType, event.Severity, location)
	if event.Message != "" {
		body = fmt.Sprintf("%s - %s", body, event.Message)
	}

	data = map[string]string{
		"alert_id":         event.AlertID,
		"event_type":       event.EventType,
		"severity":         event.Severity,
		"alert_type":       event.AlertType,
		"latitude":         fmt.Sprintf("%f", event.Latitude),
		"longitude":        fmt.Sprintf("%f", event.Longitude),
		"escalation_level": fmt.Sprintf("%d", event.EscalationLevel),
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
