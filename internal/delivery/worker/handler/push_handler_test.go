package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beacon/config"
	"beacon/internal/domain/service"
	mockSvc "beacon/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockPushService) {
	t.Helper()

	pushSvc := mockSvc.NewMockPushService(t)
	handler := NewPushHandler(PushHandlerParams{
		Config:  &config.Config{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushSvc: pushSvc,
	})

	return handler, pushSvc
}

func pushRequest(t *testing.T, event *service.AlertEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	payload := map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": attributes,
			"messageId":  "msg-1",
		},
		"subscription": "projects/test/subscriptions/sos-alerts",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_PagesResponders(t *testing.T) {
	handler, pushSvc := newTestPushHandler(t)

	event := &service.AlertEvent{
		EventType:       service.AlertEventCreated,
		AlertID:         "a-1",
		Severity:        "critical",
		AlertType:       "medical",
		Latitude:        37.77,
		Longitude:       -122.41,
		ResponderTokens: []string{"tok-1", "tok-2"},
	}
	c, rec := pushRequest(t, event, map[string]string{"request_id": "req-1"})

	pushSvc.EXPECT().
		SendBatchPush(
			mock.Anything,
			[]string{"tok-1", "tok-2"},
			mock.AnythingOfType("string"),
			mock.AnythingOfType("string"),
			mock.AnythingOfType("map[string]string"),
		).
		Return(2, 0, nil, nil)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_NoTokensAcks(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	event := &service.AlertEvent{
		EventType: service.AlertEventAcknowledged,
		AlertID:   "a-1",
	}
	c, rec := pushRequest(t, event, nil)

	// No SendBatchPush expectation: an event without tokens is acked as-is.
	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_SendFailureRequestsRetry(t *testing.T) {
	handler, pushSvc := newTestPushHandler(t)

	event := &service.AlertEvent{
		EventType:       service.AlertEventEscalated,
		AlertID:         "a-1",
		EscalationLevel: 2,
		ResponderTokens: []string{"tok-1"},
	}
	c, rec := pushRequest(t, event, nil)

	pushSvc.EXPECT().
		SendBatchPush(mock.Anything, []string{"tok-1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "transient FCM failures must trigger a Pub/Sub retry")
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	body := `{"message":{"data":"not-base64!!","messageId":"msg-1"},"subscription":"sub"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreparePageContent(t *testing.T) {
	created := &service.AlertEvent{
		EventType: service.AlertEventCreated,
		AlertID:   "a-1",
		Severity:  "high",
		AlertType: "accident",
		Address:   "I-80 mile 12",
		Message:   "blown tire",
	}

	title, body, data := preparePageContent(created)
	assert.Equal(t, "SOS alert nearby", title)
	assert.Contains(t, body, "accident emergency (high severity) near I-80 mile 12")
	assert.Contains(t, body, "blown tire")
	assert.Equal(t, "a-1", data["alert_id"])
	assert.Equal(t, service.AlertEventCreated, data["event_type"])

	escalated := &service.AlertEvent{
		EventType:       service.AlertEventEscalated,
		AlertID:         "a-1",
		Severity:        "high",
		AlertType:       "accident",
		Latitude:        37.77123,
		Longitude:       -122.41456,
		EscalationLevel: 2,
	}

	title, body, _ = preparePageContent(escalated)
	assert.Equal(t, "SOS escalation (level 2)", title)
	assert.Contains(t, body, "37.77123, -122.41456", "a missing address falls back to coordinates")
}

func TestRetryableError(t *testing.T) {
	base := errors.New("boom")
	wrapped := newRetryableError(base)

	assert.True(t, isRetryableError(wrapped))
	assert.False(t, isRetryableError(base))
	assert.ErrorIs(t, wrapped, base)
}
