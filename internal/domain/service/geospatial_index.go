package service

import (
	"context"

	"github.com/google/uuid"
)

// ResponderCandidate is a raw geospatial query hit before ranking.
type ResponderCandidate struct {
	ResponderID uuid.UUID
	Name        string
	Phone       string
	Latitude    float64
	Longitude   float64
	IsAvailable bool
	// FCMTokens are the candidate's registered device tokens for paging.
	FCMTokens []string
}

// GeospatialIndex answers "who is within radius R of point P" for available
// responders. Implementations back onto a spatial store; the locator stays
// testable against this interface.
type GeospatialIndex interface {
	// FindAvailableWithin returns available responders within radiusMiles of
	// the point. Order is unspecified; ranking is the locator's job.
	FindAvailableWithin(ctx context.Context, lat, lng, radiusMiles float64) ([]*ResponderCandidate, error)
}
