package usecase

import (
	"context"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// publishedSource reads the active snapshot through the cache. Cache failures
// are logged and fall through to the store; they never fail a request.
//
// A miss fills the cache with whatever the store returned. That fill can land
// after a concurrent publish, so the cache itself must refuse older versions.
type publishedSource struct {
	repo   interfaces.IPricingConfigRepository
	cache  interfaces.IPublishedConfigCache
	logger *zap.Logger
}

func (s publishedSource) load(ctx context.Context) (entities.PublishedConfig, error) {
	cached, found, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("[pricing][usecase] cache read failed", zap.Error(err))
	}
	if err == nil && found {
		return cached, nil
	}

	published, err := s.repo.GetPublished(ctx)
	if err != nil {
		return entities.PublishedConfig{}, err
	}
	if published.Data == nil {
		published.Data = entities.PricingConfiguration{}
	}

	if published.Version > 0 {
		if err := s.cache.Set(ctx, published); err != nil {
			s.logger.Warn("[pricing][usecase] cache fill failed", zap.Int("version", published.Version), zap.Error(err))
		}
	}
	return published, nil
}

// store makes a freshly published snapshot visible on the quote path. If the
// cache cannot be updated it is dropped, and fills older than the new version
// are refused, so readers go back to the store.
func (s publishedSource) store(ctx context.Context, published entities.PublishedConfig) {
	if err := s.cache.Set(ctx, published); err != nil {
		s.logger.Warn("[pricing][usecase] cache update failed, invalidating",
			zap.Int("version", published.Version), zap.Error(err))
		if err := s.cache.Invalidate(ctx, published.Version); err != nil {
			s.logger.Error("[pricing][usecase] cache invalidation failed",
				zap.Int("version", published.Version), zap.Error(err))
		}
	}
}
