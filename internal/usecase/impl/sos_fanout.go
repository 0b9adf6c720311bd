package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
)

// notifyEmergencyServices reports the alert to the external dispatch gateway
// and marks the alert at most once. A gateway failure leaves the flag unset
// so a later escalation step retries.
func (s *sosService) notifyEmergencyServices(ctx context.Context, alert *entity.SOSAlert) {
	referenceID, err := s.gateway.Notify(ctx, alert)
	if err != nil {
		s.log(ctx).Error("emergency services notification failed",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	if err := s.alertRepo.MarkEmergencyServicesNotified(ctx, alert.ID, referenceID); err != nil {
		s.log(ctx).Error("failed to mark emergency services notified",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	alert.EmergencyServicesNotified = true
	alert.EmergencyReferenceID = referenceID
}

// notifyContacts messages the initiator's auto-notify emergency contacts
// over their preferred channels.
func (s *sosService) notifyContacts(ctx context.Context, alert *entity.SOSAlert) {
	contacts, err := s.contactRepo.FindContactsByUser(ctx, alert.InitiatorID)
	if err != nil {
		s.log(ctx).Error("failed to load emergency contacts",
			slog.String("alert_id", alert.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	subject := fmt.Sprintf("Emergency alert: %s", alert.AlertType)
	body := contactMessageBody(alert)

	for _, contact := range contacts {
		if !contact.AutoNotifyOnSOS {
			continue
		}

		s.sendContactMessages(ctx, alert, contact, subject, body)
	}
}

// sendContactMessages delivers to one contact over each of their channels.
// The notification record is reserved up front so concurrent fanouts cannot
// double-send, and released again when no channel delivered so a later retry
// reaches the contact. Returns true when at least one channel succeeded.
func (s *sosService) sendContactMessages(ctx context.Context, alert *entity.SOSAlert, contact *entity.EmergencyContact, subject, body string) bool {
	recorded, err := s.alertRepo.AppendNotification(ctx, &entity.AlertNotification{
		AlertID:   alert.ID,
		NotifType: entity.NotifyTargetContact,
		TargetID:  contact.ID.String(),
		Channel:   contact.NotificationPreference.Channels()[0],
		SentAt:    time.Now(),
	})
	if err != nil {
		s.log(ctx).Error("failed to record contact notification",
			slog.String("alert_id", alert.ID.String()),
			slog.String("contact_id", contact.ID.String()),
			slog.String("error", err.Error()),
		)

		return false
	}
	if !recorded {
		// Already notified for this alert.
		return true
	}

	delivered := false
	for _, channel := range contact.NotificationPreference.Channels() {
		msg := &service.ChannelMessage{
			Channel:  channel,
			Subject:  subject,
			Body:     body,
			AlertID:  alert.ID.String(),
			TargetID: contact.ID.String(),
		}

		switch channel {
		case "sms":
			if contact.Phone == "" {
				continue
			}
			msg.To = contact.Phone
		case "email":
			if contact.Email == "" {
				continue
			}
			msg.To = contact.Email
		default:
			continue
		}

		if err := s.channel.Send(ctx, msg); err != nil {
			s.log(ctx).Warn("contact notification delivery failed",
				slog.String("alert_id", alert.ID.String()),
				slog.String("contact_id", contact.ID.String()),
				slog.String("channel", channel),
				slog.String("error", err.Error()),
			)

			continue
		}

		delivered = true
	}

	if !delivered {
		if err := s.alertRepo.RemoveNotification(ctx, alert.ID, entity.NotifyTargetContact, contact.ID.String()); err != nil {
			s.log(ctx).Error("failed to release contact notification record",
				slog.String("alert_id", alert.ID.String()),
				slog.String("contact_id", contact.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return delivered
}

// recordResponderPaging records one push notification per responder and
// returns the device tokens of responders that were not paged before.
// Re-entrant calls after a widening escalation only page the new arrivals.
func (s *sosService) recordResponderPaging(ctx context.Context, alert *entity.SOSAlert, responders []*entity.NearbyResponder) []string {
	var tokens []string

	for _, responder := range responders {
		if responder.IsDispatch {
			continue
		}

		recorded, err := s.alertRepo.AppendNotification(ctx, &entity.AlertNotification{
			AlertID:   alert.ID,
			NotifType: entity.NotifyTargetResponder,
			TargetID:  responder.ResponderID.String(),
			Channel:   "push",
			SentAt:    time.Now(),
		})
		if err != nil {
			s.log(ctx).Error("failed to record responder paging",
				slog.String("alert_id", alert.ID.String()),
				slog.String("responder_id", responder.ResponderID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}

		if recorded {
			tokens = append(tokens, responder.FCMTokens...)
		}
	}

	return tokens
}

// publishEvent hands an alert lifecycle event to the worker pipeline. Test
// alerts stay out of the pipeline entirely.
func (s *sosService) publishEvent(ctx context.Context, alert *entity.SOSAlert, eventType string, responderTokens []string) {
	if alert.IsTest {
		return
	}

	event := &service.AlertEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EventType:       eventType,
		AlertID:         alert.ID.String(),
		Severity:        string(alert.Severity),
		AlertType:       string(alert.AlertType),
		Status:          string(alert.Status),
		Latitude:        alert.Location.Latitude,
		Longitude:       alert.Location.Longitude,
		Address:         alert.Location.Address,
		Message:         alert.Message,
		EscalationLevel: alert.EscalationLevel,
		ResponderTokens: responderTokens,
	}

	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		s.log(ctx).Error("failed to publish alert event",
			slog.String("alert_id", alert.ID.String()),
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
	}
}

// contactMessageBody renders the notification text for emergency contacts.
func contactMessageBody(alert *entity.SOSAlert) string {
	location := alert.Location.Address
	if location == "" {
		location = fmt.Sprintf("%.5f, %.5f", alert.Location.Latitude, alert.Location.Longitude)
	}

	body := fmt.Sprintf("An emergency alert (%s, severity %s) was triggered near %s.",
		alert.AlertType, alert.Severity, location)
	if alert.Message != "" {
		body += " Message: " + alert.Message
	}

	return body
}
