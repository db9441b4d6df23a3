package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/redisconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/dualward"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/repositories"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	districtCacheKey = "wellington:districts"
	districtCacheTTL = 10 * time.Minute
)

type ILocationService interface {
	LoadDistricts(ctx context.Context) ([]models.District, error)
	NewSelector(ctx context.Context) (*dualward.Selector, error)
	InvalidateCache(ctx context.Context)
}

type LocationService struct {
	repo repositories.IDistrictRepository
}

func NewLocationService() ILocationService {
	return &LocationService{repo: repositories.NewDistrictRepository()}
}

// LoadDistricts serves the hierarchy from Redis when possible. The hierarchy
// only changes on a boundary re-seed, so a short TTL plus explicit
// invalidation keeps it fresh.
func (s *LocationService) LoadDistricts(ctx context.Context) ([]models.District, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	districts, err := s.repo.LoadDistricts(ctx)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, districts)
	return districts, nil
}

// NewSelector builds a dual-taxonomy selector over the full ward lists, for
// one user interaction.
func (s *LocationService) NewSelector(ctx context.Context) (*dualward.Selector, error) {
	districts, err := s.LoadDistricts(ctx)
	if err != nil {
		return nil, err
	}

	var (
		wards    []models.Ward
		oldWards []models.OldWard
	)
	for _, d := range districts {
		wards = append(wards, d.Wards...)
		oldWards = append(oldWards, d.OldWards...)
	}
	return dualward.NewSelector(wards, oldWards), nil
}

func (s *LocationService) InvalidateCache(ctx context.Context) {
	client := redisconfig.GetClient()
	if client == nil {
		return
	}
	if err := client.Del(ctx, districtCacheKey).Err(); err != nil {
		logconfig.Log.Warn("District cache could not be invalidated", zap.Error(err))
	}
}

func (s *LocationService) fromCache(ctx context.Context) []models.District {
	client := redisconfig.GetClient()
	if client == nil {
		return nil
	}

	raw, err := client.Get(ctx, districtCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logconfig.Log.Warn("District cache read failed", zap.Error(err))
		}
		return nil
	}

	var districts []models.District
	if err := json.Unmarshal(raw, &districts); err != nil {
		logconfig.Log.Warn("District cache entry corrupt, dropping", zap.Error(err))
		_ = client.Del(ctx, districtCacheKey).Err()
		return nil
	}
	return districts
}

func (s *LocationService) toCache(ctx context.Context, districts []models.District) {
	client := redisconfig.GetClient()
	if client == nil {
		return
	}

	raw, err := json.Marshal(districts)
	if err != nil {
		return
	}
	if err := client.Set(ctx, districtCacheKey, raw, districtCacheTTL).Err(); err != nil {
		logconfig.Log.Warn("District cache write failed", zap.Error(err))
	}
}
