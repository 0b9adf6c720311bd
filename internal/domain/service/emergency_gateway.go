package service

import (
	"context"

	"beacon/internal/domain/entity"
)

// EmergencyGateway is the external emergency-services channel. Notify is
// expected to fail sometimes; the caller leaves the alert's notified flag
// unset on failure so a later escalation step retries.
type EmergencyGateway interface {
	// Notify reports the alert to emergency services and returns the
	// gateway's reference id for the dispatch.
	Notify(ctx context.Context, alert *entity.SOSAlert) (referenceID string, err error)
}
