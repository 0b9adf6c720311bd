// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// EmergencyDispatchID is the synthetic responder id used for the external
// emergency-services channel in wide-radius results. It is not a billable
// responder.
var EmergencyDispatchID = uuid.Nil

// NearbyResponder is a ranked candidate returned by the responder locator.
type NearbyResponder struct {
	ResponderID   uuid.UUID `json:"responder_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	DistanceMiles float64   `json:"distance_miles"`
	ETAMinutes    int       `json:"eta_minutes"`
	IsDispatch    bool      `json:"is_dispatch"` // True for the synthetic emergency-dispatch entry.

	// FCMTokens are the responder's registered device tokens, carried for
	// paging and never serialized to API responses.
	FCMTokens []string `json:"-"`
}
