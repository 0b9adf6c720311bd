// Package geocode provides reverse geocoding against a Nominatim-compatible
// endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

type nominatimService struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNominatimService creates a reverse geocoder backed by a
// Nominatim-compatible HTTP endpoint.
func NewNominatimService(endpoint string, timeout time.Duration, logger *slog.Logger) service.GeocodeService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &nominatimService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode resolves coordinates to a human-readable address. A failure
// here never blocks alert handling; callers treat errors as a missing address.
func (s *nominatimService) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lng))
	query.Set("format", "jsonv2")

	reqURL := fmt.Sprintf("%s/reverse?%s", s.endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "reverse geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("geocoder returned non-success status: %d", resp.StatusCode)
	}

	var result reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "failed to decode geocoder response")
	}

	return result.DisplayName, nil
}
