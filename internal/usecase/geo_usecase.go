package usecase

import (
	"context"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/logger"
)

type GeoLookupClient interface {
	Lookup(ctx context.Context, ip string) (*entity.GeoLocation, error)
}

// GeoUseCase resolves the caller's location for the storefront badge. The
// lookup is best effort: failures yield a nil location and no error, and the
// last ten results are kept per user.
type GeoUseCase struct {
	geoRepo repository.GeoRepository
	client  GeoLookupClient
}

func NewGeoUseCase(geoRepo repository.GeoRepository, client GeoLookupClient) *GeoUseCase {
	return &GeoUseCase{
		geoRepo: geoRepo,
		client:  client,
	}
}

func (u *GeoUseCase) Lookup(ctx context.Context, userID, ip string) (*entity.GeoLocation, error) {
	location, err := u.client.Lookup(ctx, ip)
	if err != nil {
		logger.Warn("Geo lookup failed for %s: %v", ip, err)
		return nil, nil
	}

	state, err := u.geoRepo.Get(ctx, userID)
	if err != nil {
		logger.Warn("Geo state read failed: %v", err)
		return location, nil
	}

	state.Last = location
	state.History = append([]entity.GeoLocation{*location}, state.History...)
	if len(state.History) > entity.GeoHistoryLimit {
		state.History = state.History[:entity.GeoHistoryLimit]
	}

	if err := u.geoRepo.Save(ctx, state); err != nil {
		logger.Warn("Geo state save failed: %v", err)
	}
	return location, nil
}

func (u *GeoUseCase) History(ctx context.Context, userID string) (*entity.GeoState, error) {
	return u.geoRepo.Get(ctx, userID)
}
