package service

import "context"

// ChannelMessage is one outbound message to an emergency contact or the
// alert initiator over a non-push channel.
type ChannelMessage struct {
	Channel  string `json:"channel"` // sms or email
	To       string `json:"to"`      // phone number or email address
	Subject  string `json:"subject,omitempty"`
	Body     string `json:"body"`
	AlertID  string `json:"alert_id"`
	TargetID string `json:"target_id"`
}

// NotificationChannel delivers messages over sms/email style channels.
// Delivery is best-effort; callers log failures and move on.
type NotificationChannel interface {
	// Send delivers a single message.
	Send(ctx context.Context, msg *ChannelMessage) error
}
