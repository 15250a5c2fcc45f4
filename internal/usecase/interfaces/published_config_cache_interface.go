package interfaces

import (
	"context"

	"freight_pricing/internal/domain/entities"
)

//go:generate mockgen -source=published_config_cache_interface.go -destination=mocks/mock_published_config_cache.go -package=mock_interfaces

// IPublishedConfigCache keeps the active snapshot close to the quote path.
type IPublishedConfigCache interface {
	// Get reports found=false on a cache miss.
	Get(ctx context.Context) (cfg entities.PublishedConfig, found bool, err error)
	// Set must not replace a snapshot with an older version.
	Set(ctx context.Context, cfg entities.PublishedConfig) error
	// Invalidate drops the snapshot; fills older than version stay rejected.
	Invalidate(ctx context.Context, version int) error
}
