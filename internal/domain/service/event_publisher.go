package service

import (
	"context"
)

// Alert event types published to the message queue.
const (
	AlertEventCreated      = "alert.created"
	AlertEventEscalated    = "alert.escalated"
	AlertEventAcknowledged = "alert.acknowledged"
	AlertEventResolved     = "alert.resolved"
)

// AlertEvent is the payload handed to the sosworker for asynchronous
// responder paging and downstream consumers.
type AlertEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventType string `json:"event_type"`
	AlertID   string `json:"alert_id"`
	Severity  string `json:"severity"`
	AlertType string `json:"alert_type"`
	Status    string `json:"status"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Message   string  `json:"message,omitempty"`
	// EscalationLevel at the time of the event.
	EscalationLevel int `json:"escalation_level"`
	// ResponderTokens are the pre-selected device tokens to page for this
	// event; the worker sends without re-running discovery.
	ResponderTokens []string `json:"responder_tokens,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert lifecycle event for async processing
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
