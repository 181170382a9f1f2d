package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/garageops/workshop-api/internal/cache"
	domain "github.com/garageops/workshop-api/internal/domain/servicerecord"
	"github.com/garageops/workshop-api/internal/models"
)

const (
	carCachePrefix = "car:reg:"
	carCacheTTL    = 5 * time.Minute
)

// CarCacheKey builds the cache key for a registration number. The car
// handlers use it to invalidate after updates and soft deletes.
func CarCacheKey(registrationNumber string) string {
	return carCachePrefix + registrationNumber
}

// CachedLookupRepository wraps a repository and caches the
// car-by-registration lookup, the hot path of record creation. All
// other calls pass straight through.
type CachedLookupRepository struct {
	domain.Repository
	cache *cache.Client
}

func NewCachedLookupRepository(
	repo domain.Repository,
	c *cache.Client,
) *CachedLookupRepository {
	return &CachedLookupRepository{
		Repository: repo,
		cache:      c,
	}
}

func (r *CachedLookupRepository) FindActiveCarByRegistration(
	ctx context.Context,
	registrationNumber string,
) (*models.Car, error) {

	key := CarCacheKey(registrationNumber)

	if cached, err := r.cache.Get(ctx, key); err == nil {
		var car models.Car
		if err := json.Unmarshal([]byte(cached), &car); err == nil {
			return &car, nil
		}
		// unreadable entry → fall through to the database
	}

	car, err := r.Repository.FindActiveCarByRegistration(ctx, registrationNumber)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(car); err == nil {
		// cache write failures are not worth failing the request
		_ = r.cache.Set(ctx, key, string(b), carCacheTTL)
	}

	return car, nil
}

var _ domain.Repository = (*CachedLookupRepository)(nil)
