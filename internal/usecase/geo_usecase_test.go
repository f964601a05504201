package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truvamate/internal/domain/entity"
)

type fakeGeoClient struct {
	err   error
	calls int
}

func (c *fakeGeoClient) Lookup(ctx context.Context, ip string) (*entity.GeoLocation, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &entity.GeoLocation{IP: ip, Country: "Thailand", CountryCode: "TH", City: "Bangkok"}, nil
}

func TestGeoLookupRecordsHistory(t *testing.T) {
	repo := newFakeGeoRepo()
	uc := NewGeoUseCase(repo, &fakeGeoClient{})
	ctx := context.Background()

	location, err := uc.Lookup(ctx, "u1", "1.2.3.4")
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, "TH", location.CountryCode)

	state, err := uc.History(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, state.Last)
	assert.Equal(t, "1.2.3.4", state.Last.IP)
	assert.Len(t, state.History, 1)
}

func TestGeoLookupFailureIsNotAnError(t *testing.T) {
	repo := newFakeGeoRepo()
	uc := NewGeoUseCase(repo, &fakeGeoClient{err: errors.New("upstream down")})

	location, err := uc.Lookup(context.Background(), "u1", "1.2.3.4")
	assert.NoError(t, err)
	assert.Nil(t, location)

	state, err := uc.History(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, state.History)
}

func TestGeoHistoryIsBounded(t *testing.T) {
	repo := newFakeGeoRepo()
	uc := NewGeoUseCase(repo, &fakeGeoClient{})
	ctx := context.Background()

	for i := 0; i < entity.GeoHistoryLimit+5; i++ {
		_, err := uc.Lookup(ctx, "u1", fmt.Sprintf("10.0.0.%d", i))
		require.NoError(t, err)
	}

	state, err := uc.History(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, state.History, entity.GeoHistoryLimit)
	// Newest first.
	assert.Equal(t, fmt.Sprintf("10.0.0.%d", entity.GeoHistoryLimit+4), state.History[0].IP)
}

func TestGeoSaveFailureStillReturnsLocation(t *testing.T) {
	repo := newFakeGeoRepo()
	repo.saveErr = errors.New("write denied")
	uc := NewGeoUseCase(repo, &fakeGeoClient{})

	location, err := uc.Lookup(context.Background(), "u1", "1.2.3.4")
	assert.NoError(t, err)
	assert.NotNil(t, location)
}
