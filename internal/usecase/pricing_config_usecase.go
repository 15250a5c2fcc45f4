package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
	"freight_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxCommentLength = 500

var (
	ErrNoDraft              = errors.New("no draft to publish")
	ErrPublishConflict      = errors.New("configuration was published concurrently")
	ErrModeNotFound         = pricing.ErrModeNotFound
	ErrVersionNotFound      = errors.New("published version not found")
	ErrInvalidVersion       = errors.New("invalid version")
	ErrInvalidComment       = errors.New("invalid publish comment")
	ErrInvalidPreviewSource = errors.New("invalid preview source")
)

// ValidationError carries the validator messages that blocked a publish.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "configuration is invalid: " + strings.Join(e.Errors, "; ")
}

// PreviewSource selects which configuration a curve preview is drawn from.
type PreviewSource string

const (
	PreviewSourceDraft     PreviewSource = "draft"
	PreviewSourcePublished PreviewSource = "published"
)

// LoadedConfig is what the admin screen loads: the active snapshot and the
// working draft, if one was saved.
type LoadedConfig struct {
	Published entities.PublishedConfig
	Draft     *entities.DraftConfig
}

//go:generate mockgen -source=pricing_config_usecase.go -destination=../adapter/http/handlers/mocks/mock_pricing_config_usecase.go -package=mocks

// IPricingConfigUseCase exposes the draft / validate / publish workflow.
//
// CreateMode, DuplicateMode and DeleteMode only edit the document they are
// given; nothing is stored until SaveDraft.
type IPricingConfigUseCase interface {
	LoadConfig(ctx context.Context) (LoadedConfig, error)
	SaveDraft(ctx context.Context, data entities.PricingConfiguration) (entities.DraftConfig, error)
	Validate(data entities.PricingConfiguration) pricing.ValidationResult
	Publish(ctx context.Context, comment string) (entities.PublishedConfig, error)
	GetVersion(ctx context.Context, version int) (entities.PublishedConfig, error)
	CreateMode(data entities.PricingConfiguration, label string) (entities.PricingConfiguration, string)
	DuplicateMode(data entities.PricingConfiguration, key string) (entities.PricingConfiguration, string, error)
	DeleteMode(data entities.PricingConfiguration, key string) (entities.PricingConfiguration, error)
	Preview(ctx context.Context, source PreviewSource, mode string, minWeight float64) (pricing.CurvePreview, error)
}

type PricingConfigUseCase struct {
	repo      interfaces.IPricingConfigRepository
	published publishedSource
	logger    *zap.Logger
	now       func() time.Time
}

var _ IPricingConfigUseCase = (*PricingConfigUseCase)(nil)

func NewPricingConfigUseCase(repo interfaces.IPricingConfigRepository, cache interfaces.IPublishedConfigCache, logger *zap.Logger) *PricingConfigUseCase {
	return &PricingConfigUseCase{
		repo:      repo,
		published: publishedSource{repo: repo, cache: cache, logger: logger},
		logger:    logger,
		now:       time.Now,
	}
}

func (u *PricingConfigUseCase) LoadConfig(ctx context.Context) (LoadedConfig, error) {
	published, err := u.repo.GetPublished(ctx)
	if err != nil {
		return LoadedConfig{}, err
	}
	published.Data = published.Data.Clone()

	draft, err := u.repo.GetDraft(ctx)
	if err != nil {
		return LoadedConfig{}, err
	}
	if draft != nil {
		draft.Data = draft.Data.Clone()
	}

	return LoadedConfig{Published: published, Draft: draft}, nil
}

// SaveDraft stores data verbatim. Invalid drafts are accepted on purpose:
// validation only gates Publish.
func (u *PricingConfigUseCase) SaveDraft(ctx context.Context, data entities.PricingConfiguration) (entities.DraftConfig, error) {
	draft := entities.DraftConfig{
		Data:      data.Clone(),
		UpdatedAt: u.now().UTC(),
	}
	if err := u.repo.SaveDraft(ctx, draft); err != nil {
		return entities.DraftConfig{}, err
	}

	u.logger.Info("[pricing][usecase] draft saved", zap.Int("modes", len(draft.Data)))
	return draft, nil
}

func (u *PricingConfigUseCase) Validate(data entities.PricingConfiguration) pricing.ValidationResult {
	return pricing.Validate(data)
}

// Publish turns the saved draft into the next version. The draft is kept, so
// publishing twice without edits yields two versions with identical data.
func (u *PricingConfigUseCase) Publish(ctx context.Context, comment string) (entities.PublishedConfig, error) {
	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return entities.PublishedConfig{}, ErrInvalidComment
	}

	draft, err := u.repo.GetDraft(ctx)
	if err != nil {
		return entities.PublishedConfig{}, err
	}
	if draft == nil {
		return entities.PublishedConfig{}, ErrNoDraft
	}

	if res := pricing.Validate(draft.Data); !res.OK {
		return entities.PublishedConfig{}, &ValidationError{Errors: res.Errors}
	}

	current, err := u.repo.GetPublished(ctx)
	if err != nil {
		return entities.PublishedConfig{}, err
	}

	snapshot := entities.PublishedConfig{
		Version:     current.Version + 1,
		Data:        draft.Data.Clone(),
		Comment:     comment,
		PublishID:   uuid.NewString(),
		PublishedAt: u.now().UTC(),
	}

	if err := u.repo.Publish(ctx, snapshot); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.PublishedConfig{}, ErrPublishConflict
		}
		return entities.PublishedConfig{}, err
	}

	u.published.store(ctx, snapshot)
	u.logger.Info("[pricing][usecase] configuration published",
		zap.Int("version", snapshot.Version),
		zap.String("publish_id", snapshot.PublishID),
		zap.Int("modes", len(snapshot.Data)))
	return snapshot, nil
}

func (u *PricingConfigUseCase) GetVersion(ctx context.Context, version int) (entities.PublishedConfig, error) {
	if version <= 0 {
		return entities.PublishedConfig{}, ErrInvalidVersion
	}

	p, err := u.repo.GetVersion(ctx, version)
	if err != nil {
		return entities.PublishedConfig{}, err
	}
	if p.Version == 0 {
		return entities.PublishedConfig{}, ErrVersionNotFound
	}
	return p, nil
}

func (u *PricingConfigUseCase) CreateMode(data entities.PricingConfiguration, label string) (entities.PricingConfiguration, string) {
	return pricing.CreateMode(data, label)
}

func (u *PricingConfigUseCase) DuplicateMode(data entities.PricingConfiguration, key string) (entities.PricingConfiguration, string, error) {
	return pricing.DuplicateMode(data, key)
}

func (u *PricingConfigUseCase) DeleteMode(data entities.PricingConfiguration, key string) (entities.PricingConfiguration, error) {
	return pricing.DeleteMode(data, key)
}

// Preview samples one mode's price curve. The draft source falls back to the
// published data when no draft was saved, as the editor does.
func (u *PricingConfigUseCase) Preview(ctx context.Context, source PreviewSource, mode string, minWeight float64) (pricing.CurvePreview, error) {
	if source != PreviewSourceDraft && source != PreviewSourcePublished {
		return pricing.CurvePreview{}, ErrInvalidPreviewSource
	}

	var (
		cfg    entities.PricingConfiguration
		loaded bool
	)
	if source == PreviewSourceDraft {
		draft, err := u.repo.GetDraft(ctx)
		if err != nil {
			return pricing.CurvePreview{}, err
		}
		if draft != nil {
			cfg, loaded = draft.Data, true
		}
	}
	if !loaded {
		published, err := u.published.load(ctx)
		if err != nil {
			return pricing.CurvePreview{}, err
		}
		cfg = published.Data
	}

	tariff, ok := cfg[mode]
	if !ok {
		return pricing.CurvePreview{}, ErrModeNotFound
	}
	return pricing.PreviewCurve(tariff, minWeight), nil
}
