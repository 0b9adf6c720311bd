package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mockSvc "beacon/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponderLocator_FindNearbyResponders_RanksByDistance(t *testing.T) {
	mockIndex := mockSvc.NewMockGeospatialIndex(t)
	locator := NewResponderLocator(mockIndex)

	ctx := context.Background()

	// Candidates deliberately returned out of order; roughly 0.7 and 3.5
	// miles north of the origin.
	near := &service.ResponderCandidate{
		ResponderID: uuid.New(),
		Name:        "Near",
		Latitude:    37.01,
		Longitude:   -122.0,
		IsAvailable: true,
		FCMTokens:   []string{"tok-near"},
	}
	far := &service.ResponderCandidate{
		ResponderID: uuid.New(),
		Name:        "Far",
		Latitude:    37.05,
		Longitude:   -122.0,
		IsAvailable: true,
	}
	unavailable := &service.ResponderCandidate{
		ResponderID: uuid.New(),
		Name:        "Busy",
		Latitude:    37.01,
		Longitude:   -122.0,
		IsAvailable: false,
	}

	mockIndex.EXPECT().
		FindAvailableWithin(ctx, 37.0, -122.0, 5.0).
		Return([]*service.ResponderCandidate{far, unavailable, near}, nil)

	responders, err := locator.FindNearbyResponders(ctx, 37.0, -122.0, 5, 10)
	require.NoError(t, err)
	require.Len(t, responders, 2)

	assert.Equal(t, "Near", responders[0].Name)
	assert.Equal(t, "Far", responders[1].Name)
	assert.Less(t, responders[0].DistanceMiles, responders[1].DistanceMiles)
	assert.Equal(t, []string{"tok-near"}, responders[0].FCMTokens)

	for _, r := range responders {
		assert.Greater(t, r.ETAMinutes, 0)
		assert.False(t, r.IsDispatch)
	}
}

func TestResponderLocator_FindNearbyResponders_DropsOutOfRadius(t *testing.T) {
	mockIndex := mockSvc.NewMockGeospatialIndex(t)
	locator := NewResponderLocator(mockIndex)

	ctx := context.Background()

	// Roughly 69 miles away; the index may over-approximate, the locator
	// enforces the radius on the exact distance.
	tooFar := &service.ResponderCandidate{
		ResponderID: uuid.New(),
		Latitude:    38.0,
		Longitude:   -122.0,
		IsAvailable: true,
	}

	mockIndex.EXPECT().
		FindAvailableWithin(ctx, 37.0, -122.0, 5.0).
		Return([]*service.ResponderCandidate{tooFar}, nil)

	responders, err := locator.FindNearbyResponders(ctx, 37.0, -122.0, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, responders)
}

func TestResponderLocator_FindNearbyResponders_WideSearchAddsDispatch(t *testing.T) {
	mockIndex := mockSvc.NewMockGeospatialIndex(t)
	locator := NewResponderLocator(mockIndex)

	ctx := context.Background()

	mockIndex.EXPECT().
		FindAvailableWithin(ctx, 37.0, -122.0, 10.0).
		Return(nil, nil)

	responders, err := locator.FindNearbyResponders(ctx, 37.0, -122.0, 10, 10)
	require.NoError(t, err)
	require.Len(t, responders, 1)

	dispatch := responders[0]
	assert.True(t, dispatch.IsDispatch)
	assert.Equal(t, entity.EmergencyDispatchID, dispatch.ResponderID)
	assert.Equal(t, "Emergency Dispatch", dispatch.Name)
	assert.Equal(t, dispatchETAMinutes, dispatch.ETAMinutes)
}

func TestResponderLocator_FindNearbyResponders_DispatchSurvivesFullCap(t *testing.T) {
	mockIndex := mockSvc.NewMockGeospatialIndex(t)
	locator := NewResponderLocator(mockIndex)

	ctx := context.Background()

	// Enough in-radius candidates to fill the cap on their own; the dispatch
	// entry still has to lead the list.
	candidates := make([]*service.ResponderCandidate, 0, 10)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, &service.ResponderCandidate{
			ResponderID: uuid.New(),
			Latitude:    37.0 + float64(i)*0.005,
			Longitude:   -122.0,
			IsAvailable: true,
		})
	}

	mockIndex.EXPECT().
		FindAvailableWithin(ctx, 37.0, -122.0, 10.0).
		Return(candidates, nil)

	responders, err := locator.FindNearbyResponders(ctx, 37.0, -122.0, 10, 10)
	require.NoError(t, err)
	require.Len(t, responders, 10)

	assert.True(t, responders[0].IsDispatch)
	assert.Equal(t, entity.EmergencyDispatchID, responders[0].ResponderID)
	assert.Zero(t, responders[0].DistanceMiles)

	for i, r := range responders[1:] {
		assert.False(t, r.IsDispatch)
		if i > 0 {
			assert.GreaterOrEqual(t, r.DistanceMiles, responders[i].DistanceMiles)
		}
	}
}

func TestResponderLocator_FindNearbyResponders_NarrowSearchHasNoDispatch(t *testing.T) {
	mockIndex := mockSvc.NewMockGeospatialIndex(t)
	locator := NewResponderLocator(mockIndex)

	ctx := context.Background()

	mockIndex.EXPECT().
		FindAvailableWithin(ctx, 37.0, -122.0, 5.0).
		Return(nil, nil)

	responders, err := locator.FindNearbyResponders(ctx, 37.0, -122.0, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, responders)
}

func TestResponderLocator_FindNearbyResponders_CapsAtLimit(t *testing.T) {
	mockIndex := mockSvc.NewMockGeospatialIndex(t)
	locator := NewResponderLocator(mockIndex)

	ctx := context.Background()

	candidates := make([]*service.ResponderCandidate, 0, 5)
	for i := 0; i < 5; i++ {
		candidates = append(candidates, &service.ResponderCandidate{
			ResponderID: uuid.New(),
			Latitude:    37.0 + float64(i)*0.01,
			Longitude:   -122.0,
			IsAvailable: true,
		})
	}

	mockIndex.EXPECT().
		FindAvailableWithin(ctx, 37.0, -122.0, 5.0).
		Return(candidates, nil)

	responders, err := locator.FindNearbyResponders(ctx, 37.0, -122.0, 5, 2)
	require.NoError(t, err)
	assert.Len(t, responders, 2)
}

func TestResponderLocator_FindNearbyResponders_IndexError(t *testing.T) {
	mockIndex := mockSvc.NewMockGeospatialIndex(t)
	locator := NewResponderLocator(mockIndex)

	ctx := context.Background()
	indexErr := errors.New("postgis unavailable")

	mockIndex.EXPECT().
		FindAvailableWithin(ctx, 37.0, -122.0, 5.0).
		Return(nil, indexErr)

	responders, err := locator.FindNearbyResponders(ctx, 37.0, -122.0, 5, 10)
	require.ErrorIs(t, err, indexErr)
	assert.Nil(t, responders)
}

func TestEstimateETAMinutes(t *testing.T) {
	tests := []struct {
		distanceMiles float64
		want          int
	}{
		{0, 0},
		{0.5, 1},   // 1 minute at 30 mph
		{1, 2},     // exactly 2 minutes
		{2.4, 5},   // 4.8 minutes rounds up
		{30, 60},   // an hour
		{30.1, 61}, // always round up
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, estimateETAMinutes(tt.distanceMiles), "distance %.2f", tt.distanceMiles)
	}
}
