package interfaces

import (
	"context"
	"errors"

	"freight_pricing/internal/domain/entities"
)

//go:generate mockgen -source=pricing_config_repository_interface.go -destination=mocks/mock_pricing_config_repository.go -package=mock_interfaces

// ErrVersionConflict is returned by Publish when the active version is no
// longer the one the new snapshot was built on.
var ErrVersionConflict = errors.New("published version changed concurrently")

// IPricingConfigRepository persists the draft and the published snapshots.
//
// Publish must be atomic: either the new version becomes the active one and is
// readable by version, or nothing changes.
type IPricingConfigRepository interface {
	// GetPublished returns the active snapshot; Version 0 means nothing was published yet.
	GetPublished(ctx context.Context) (entities.PublishedConfig, error)
	// GetVersion returns a past snapshot; Version 0 means it does not exist.
	GetVersion(ctx context.Context, version int) (entities.PublishedConfig, error)
	// GetDraft returns nil when no draft was saved.
	GetDraft(ctx context.Context) (*entities.DraftConfig, error)
	SaveDraft(ctx context.Context, draft entities.DraftConfig) error
	Publish(ctx context.Context, snapshot entities.PublishedConfig) error
}
