package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/runcrewhq/crew-directory/internal/domain"
	"github.com/runcrewhq/crew-directory/internal/persistence"
	"github.com/runcrewhq/crew-directory/internal/repository"
	apperrors "github.com/runcrewhq/crew-directory/pkg/util"
)

const directoryCacheKey = "directory:crews"

// CrewService serves the public directory and crew profile data. The full
// listing is cached in redis; the cache degrades gracefully when redis is
// unreachable.
type CrewService struct {
	crews    repository.CrewRepository
	photos   repository.PhotoRepository
	cache    *persistence.Redis
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCrewService builds the service.
func NewCrewService(crews repository.CrewRepository, photos repository.PhotoRepository, cache *persistence.Redis, cacheTTLSeconds int, logger *zap.Logger) *CrewService {
	return &CrewService{
		crews:    crews,
		photos:   photos,
		cache:    cache,
		cacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
		logger:   logger,
	}
}

// List returns every crew for the public map directory.
func (s *CrewService) List(ctx context.Context) ([]domain.Crew, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	crews, err := s.crews.List(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}

	s.writeCache(ctx, crews)
	return crews, nil
}

// Get returns a single crew profile.
func (s *CrewService) Get(ctx context.Context, id string) (*domain.Crew, error) {
	crew, err := s.crews.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return crew, nil
}

// Photos returns a crew's profile photos in display order.
func (s *CrewService) Photos(ctx context.Context, crewID string) ([]domain.CrewPhoto, error) {
	photos, err := s.photos.ListByCrew(ctx, crewID)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}
	return photos, nil
}

// Create adds a crew (admin console).
func (s *CrewService) Create(ctx context.Context, crew *domain.Crew) error {
	if err := s.crews.Create(ctx, crew); err != nil {
		return apperrors.NewUpstreamFailure(err)
	}
	s.invalidateCache(ctx)
	return nil
}

// Update replaces a crew's profile fields (admin console).
func (s *CrewService) Update(ctx context.Context, crew *domain.Crew) error {
	if err := s.crews.Update(ctx, crew); err != nil {
		return apperrors.MapError(err)
	}
	s.invalidateCache(ctx)
	return nil
}

// Delete removes a crew (admin console).
func (s *CrewService) Delete(ctx context.Context, id string) error {
	if err := s.crews.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CrewService) readCache(ctx context.Context) ([]domain.Crew, bool) {
	if s.cache == nil || s.cache.Client == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, directoryCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var crews []domain.Crew
	if err := json.Unmarshal(raw, &crews); err != nil {
		return nil, false
	}
	return crews, true
}

func (s *CrewService) writeCache(ctx context.Context, crews []domain.Crew) {
	if s.cache == nil || s.cache.Client == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(crews)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, directoryCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("directory cache write failed", zap.Error(err))
	}
}

func (s *CrewService) invalidateCache(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, directoryCacheKey).Err(); err != nil {
		s.logger.Debug("directory cache invalidation failed", zap.Error(err))
	}
}
