package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/runcrewhq/crew-directory/internal/config"
	"github.com/runcrewhq/crew-directory/internal/persistence"
	apperrors "github.com/runcrewhq/crew-directory/pkg/util"
)

// GeocodeService proxies forward-geocoding queries to the configured upstream
// and caches responses in redis. Upstream failures surface as a generic 500.
type GeocodeService struct {
	cfg    config.GeocodeConfig
	cache  *persistence.Redis
	client *http.Client
	logger *zap.Logger
}

// NewGeocodeService builds the proxy.
func NewGeocodeService(cfg config.GeocodeConfig, cache *persistence.Redis, logger *zap.Logger) *GeocodeService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GeocodeService{
		cfg:    cfg,
		cache:  cache,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Search resolves a free-text place query to upstream geocode results.
func (s *GeocodeService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if query == "" {
		return nil, apperrors.NewValidationError("query required", nil)
	}

	cacheKey := "geocode:" + query
	if raw, ok := s.readCache(ctx, cacheKey); ok {
		return raw, nil
	}

	upstream, err := url.Parse(s.cfg.UpstreamURL)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	params := upstream.Query()
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "5")
	upstream.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstream.String(), nil)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamFailure(fmt.Errorf("geocode upstream status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}
	if !json.Valid(raw) {
		return nil, apperrors.NewUpstreamFailure(fmt.Errorf("geocode upstream returned non-JSON body"))
	}

	s.writeCache(ctx, cacheKey, raw)
	return raw, nil
}

func (s *GeocodeService) readCache(ctx context.Context, key string) (json.RawMessage, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (s *GeocodeService) writeCache(ctx context.Context, key string, raw []byte) {
	if s.cache == nil || s.cache.Client == nil || s.cfg.CacheTTLSeconds <= 0 {
		return
	}
	ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
	if err := s.cache.Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		s.logger.Debug("geocode cache write failed", zap.Error(err))
	}
}
