package service

import "context"

// GeocodeService resolves coordinates into human-readable addresses.
// Reverse geocoding is best-effort: callers must tolerate failures without
// blocking the surrounding operation.
type GeocodeService interface {
	// ReverseGeocode returns a display address for the coordinates.
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}
