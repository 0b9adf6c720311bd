package postgres

import (
	"context"

	"beacon/internal/domain/service"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const metersPerMile = 1609.344

// responderIndex implements the service.GeospatialIndex interface against
// the marketplace's responder tables.
type responderIndex struct {
	db *gorm.DB
}

// NewResponderIndex is the constructor for responderIndex.
func NewResponderIndex(db *gorm.DB) service.GeospatialIndex {
	return &responderIndex{
		db: db,
	}
}

// FindAvailableWithin performs a PostGIS geographic query for available
// responders within the given radius of the alert location. Radius is in
// miles; ST_DWithin over geography takes meters.
func (repo *responderIndex) FindAvailableWithin(ctx context.Context, lat, lng, radiusMiles float64) ([]*service.ResponderCandidate, error) {
	var profileModels []*model.ResponderProfileModel

	query := `
		SELECT r.*
		FROM responder_profiles r
		WHERE r.is_available = true
		  AND r.deleted_at IS NULL
		  AND ST_DWithin(
		    ST_SetSRID(ST_MakePoint(r.longitude, r.latitude), 4326)::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, lng, lat, radiusMiles*metersPerMile).
		Scan(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find responders within radius")
	}

	if len(profileModels) == 0 {
		return []*service.ResponderCandidate{}, nil
	}

	responderIDs := make([]uuid.UUID, 0, len(profileModels))
	for _, profileM := range profileModels {
		responderIDs = append(responderIDs, profileM.ID)
	}

	var deviceModels []*model.ResponderDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("responder_id IN ? AND is_active = ?", responderIDs, true).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find responder devices")
	}

	tokensByResponder := make(map[uuid.UUID][]string, len(profileModels))
	for _, deviceM := range deviceModels {
		tokensByResponder[deviceM.ResponderID] = append(tokensByResponder[deviceM.ResponderID], deviceM.FCMToken)
	}

	candidates := make([]*service.ResponderCandidate, 0, len(profileModels))
	for _, profileM := range profileModels {
		candidates = append(candidates, &service.ResponderCandidate{
			ResponderID: profileM.ID,
			Name:        profileM.Name,
			Phone:       profileM.Phone,
			Latitude:    profileM.Latitude,
			Longitude:   profileM.Longitude,
			IsAvailable: profileM.IsAvailable,
			FCMTokens:   tokensByResponder[profileM.ID],
		})
	}

	return candidates, nil
}
