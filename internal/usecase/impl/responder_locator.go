package impl

import (
	"context"
	"math"
	"sort"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	metersPerMile = 1609.344

	// Average responder driving speed used for ETA estimates.
	averageSpeedMph = 30

	// Widened searches at or past this radius also surface the external
	// emergency dispatch channel as a candidate.
	dispatchRadiusMiles = 10

	// Fixed ETA advertised for the emergency dispatch entry.
	dispatchETAMinutes = 8
)

type responderLocator struct {
	index service.GeospatialIndex
}

// NewResponderLocator creates a locator backed by a geospatial index.
func NewResponderLocator(index service.GeospatialIndex) usecase.ResponderLocator {
	return &responderLocator{
		index: index,
	}
}

// FindNearbyResponders queries the index, ranks hits by straight-line
// distance and estimates an ETA for each.
func (l *responderLocator) FindNearbyResponders(ctx context.Context, lat, lng, radiusMiles float64, limit int) ([]*entity.NearbyResponder, error) {
	candidates, err := l.index.FindAvailableWithin(ctx, lat, lng, radiusMiles)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{lng, lat}

	responders := make([]*entity.NearbyResponder, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.IsAvailable {
			continue
		}

		distanceMiles := geo.Distance(origin, orb.Point{candidate.Longitude, candidate.Latitude}) / metersPerMile
		if distanceMiles > radiusMiles {
			continue
		}

		responders = append(responders, &entity.NearbyResponder{
			ResponderID:   candidate.ResponderID,
			Name:          candidate.Name,
			Phone:         candidate.Phone,
			Latitude:      candidate.Latitude,
			Longitude:     candidate.Longitude,
			DistanceMiles: distanceMiles,
			ETAMinutes:    estimateETAMinutes(distanceMiles),
			FCMTokens:     candidate.FCMTokens,
		})
	}

	sort.Slice(responders, func(i, j int) bool {
		return responders[i].DistanceMiles < responders[j].DistanceMiles
	})

	// Wide searches also offer the external dispatch channel so the caller
	// always has a fallback when no responder is close enough. It goes at the
	// head with distance zero so the cap below can never drop it.
	if radiusMiles >= dispatchRadiusMiles {
		dispatch := &entity.NearbyResponder{
			ResponderID: entity.EmergencyDispatchID,
			Name:        "Emergency Dispatch",
			ETAMinutes:  dispatchETAMinutes,
			IsDispatch:  true,
		}
		responders = append([]*entity.NearbyResponder{dispatch}, responders...)
	}

	if limit > 0 && len(responders) > limit {
		responders = responders[:limit]
	}

	return responders, nil
}

// estimateETAMinutes converts a straight-line distance to a driving ETA,
// rounded up to a whole minute.
func estimateETAMinutes(distanceMiles float64) int {
	minutes := distanceMiles / averageSpeedMph * 60

	return int(math.Ceil(minutes))
}
