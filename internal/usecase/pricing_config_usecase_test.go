package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"freight_pricing/internal/adapter/cache"
	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/domain/pricing"
	"freight_pricing/internal/usecase/interfaces"
	mock_interfaces "freight_pricing/internal/usecase/interfaces/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

func validConfig() entities.PricingConfiguration {
	return entities.PricingConfiguration{
		entities.ModeRoadFreight: pricing.DefaultTariff("Road freight"),
		entities.ModeOceanFreight: func() entities.ModeTariff {
			t := pricing.DefaultTariff("Ocean freight")
			t.TransitSpeedKmpd = 400
			return t
		}(),
	}
}

func newPricingConfigUseCase(repo interfaces.IPricingConfigRepository, cache interfaces.IPublishedConfigCache) *PricingConfigUseCase {
	uc := NewPricingConfigUseCase(repo, cache, zap.NewNop())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// memoryRepo is an in-memory IPricingConfigRepository used for workflow tests.
type memoryRepo struct {
	mu       sync.Mutex
	draft    *entities.DraftConfig
	versions []entities.PublishedConfig
}

func (r *memoryRepo) GetPublished(context.Context) (entities.PublishedConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.versions) == 0 {
		return entities.PublishedConfig{Data: entities.PricingConfiguration{}}, nil
	}
	p := r.versions[len(r.versions)-1]
	p.Data = p.Data.Clone()
	return p, nil
}

func (r *memoryRepo) GetVersion(_ context.Context, version int) (entities.PublishedConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if version <= 0 || version > len(r.versions) {
		return entities.PublishedConfig{}, nil
	}
	return r.versions[version-1], nil
}

func (r *memoryRepo) GetDraft(context.Context) (*entities.DraftConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.draft == nil {
		return nil, nil
	}
	d := *r.draft
	d.Data = d.Data.Clone()
	return &d, nil
}

func (r *memoryRepo) SaveDraft(_ context.Context, draft entities.DraftConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	draft.Data = draft.Data.Clone()
	r.draft = &draft
	return nil
}

func (r *memoryRepo) Publish(_ context.Context, snapshot entities.PublishedConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if snapshot.Version != len(r.versions)+1 {
		return interfaces.ErrVersionConflict
	}
	snapshot.Data = snapshot.Data.Clone()
	r.versions = append(r.versions, snapshot)
	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context) (entities.PublishedConfig, bool, error) {
	return entities.PublishedConfig{}, false, nil
}
func (noopCache) Set(context.Context, entities.PublishedConfig) error { return nil }
func (noopCache) Invalidate(context.Context, int) error                { return nil }

// pausingRepo runs afterRead once, between reading the published snapshot and
// returning it, to interleave a publish with an in-flight cache fill.
type pausingRepo struct {
	*memoryRepo
	afterRead func()
}

func (r *pausingRepo) GetPublished(ctx context.Context) (entities.PublishedConfig, error) {
	p, err := r.memoryRepo.GetPublished(ctx)
	if hook := r.afterRead; hook != nil {
		r.afterRead = nil
		hook()
	}
	return p, err
}

func TestPricingConfigUseCase_LoadConfig(t *testing.T) {
	t.Run("published without draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		repo.EXPECT().GetPublished(gomock.Any()).Return(entities.PublishedConfig{Version: 3, Data: validConfig()}, nil)
		repo.EXPECT().GetDraft(gomock.Any()).Return(nil, nil)

		res, err := uc.LoadConfig(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Published.Version != 3 || len(res.Published.Data) != 2 {
			t.Fatalf("unexpected published: %+v", res.Published)
		}
		if res.Draft != nil {
			t.Fatalf("expected no draft, got %+v", res.Draft)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		repo.EXPECT().GetPublished(gomock.Any()).Return(entities.PublishedConfig{}, errors.New("db"))

		if _, err := uc.LoadConfig(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPricingConfigUseCase_SaveDraft(t *testing.T) {
	t.Run("stores invalid drafts verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		broken := pricing.DefaultTariff("Broken")
		broken.P1 = entities.Missing()
		data := entities.PricingConfiguration{"broken": broken}

		repo.EXPECT().SaveDraft(gomock.Any(), gomock.AssignableToTypeOf(entities.DraftConfig{})).DoAndReturn(
			func(_ context.Context, d entities.DraftConfig) error {
				if !d.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected updated_at %v, got %v", fixedNow, d.UpdatedAt)
				}
				if d.Data["broken"].P1.IsSet() {
					t.Fatalf("missing value must be stored as missing")
				}
				return nil
			},
		)

		if _, err := uc.SaveDraft(context.Background(), data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil data saves an empty draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		repo.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil)

		d, err := uc.SaveDraft(context.Background(), nil)
		if err != nil || d.Data == nil || len(d.Data) != 0 {
			t.Fatalf("expected empty draft, got %+v %v", d, err)
		}
	})
}

func TestPricingConfigUseCase_Publish(t *testing.T) {
	t.Run("comment too long", func(t *testing.T) {
		uc := newPricingConfigUseCase(nil, noopCache{})
		_, err := uc.Publish(context.Background(), strings.Repeat("x", maxCommentLength+1))
		if !errors.Is(err, ErrInvalidComment) {
			t.Fatalf("expected ErrInvalidComment, got %v", err)
		}
	})

	t.Run("no draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		repo.EXPECT().GetDraft(gomock.Any()).Return(nil, nil)

		if _, err := uc.Publish(context.Background(), "x"); !errors.Is(err, ErrNoDraft) {
			t.Fatalf("expected ErrNoDraft, got %v", err)
		}
	})

	t.Run("invalid draft is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		bad := pricing.DefaultTariff("Road")
		bad.P1 = 9000
		repo.EXPECT().GetDraft(gomock.Any()).Return(&entities.DraftConfig{Data: entities.PricingConfiguration{"road": bad}}, nil)

		_, err := uc.Publish(context.Background(), "x")
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Errors) != 1 || !strings.Contains(vErr.Errors[0], "p1") {
			t.Fatalf("unexpected validation errors: %v", vErr.Errors)
		}
	})

	t.Run("success updates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		cache := mock_interfaces.NewMockIPublishedConfigCache(ctrl)
		uc := newPricingConfigUseCase(repo, cache)

		repo.EXPECT().GetDraft(gomock.Any()).Return(&entities.DraftConfig{Data: validConfig()}, nil)
		repo.EXPECT().GetPublished(gomock.Any()).Return(entities.PublishedConfig{Version: 4, Data: entities.PricingConfiguration{}}, nil)
		repo.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(entities.PublishedConfig{})).DoAndReturn(
			func(_ context.Context, p entities.PublishedConfig) error {
				if p.Version != 5 || p.Comment != "autumn rates" || p.PublishID == "" || !p.PublishedAt.Equal(fixedNow) {
					t.Fatalf("unexpected snapshot: %+v", p)
				}
				return nil
			},
		)
		cache.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(entities.PublishedConfig{})).Return(nil)

		p, err := uc.Publish(context.Background(), "  autumn rates ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Version != 5 {
			t.Fatalf("expected version 5, got %d", p.Version)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		repo.EXPECT().GetDraft(gomock.Any()).Return(&entities.DraftConfig{Data: validConfig()}, nil)
		repo.EXPECT().GetPublished(gomock.Any()).Return(entities.PublishedConfig{Version: 1}, nil)
		repo.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(interfaces.ErrVersionConflict)

		if _, err := uc.Publish(context.Background(), ""); !errors.Is(err, ErrPublishConflict) {
			t.Fatalf("expected ErrPublishConflict, got %v", err)
		}
	})

	t.Run("cache failure invalidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		cache := mock_interfaces.NewMockIPublishedConfigCache(ctrl)
		uc := newPricingConfigUseCase(repo, cache)

		repo.EXPECT().GetDraft(gomock.Any()).Return(&entities.DraftConfig{Data: validConfig()}, nil)
		repo.EXPECT().GetPublished(gomock.Any()).Return(entities.PublishedConfig{}, nil)
		repo.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		cache.EXPECT().Invalidate(gomock.Any(), 1).Return(nil)

		p, err := uc.Publish(context.Background(), "")
		if err != nil || p.Version != 1 {
			t.Fatalf("publish must succeed despite cache failure, got %+v %v", p, err)
		}
	})
}

func TestPricingConfigUseCase_PublishDuringCacheFill(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	const ttl = time.Minute
	redisCache := cache.NewPublishedConfigRedisCache(client, ttl)
	repo := &memoryRepo{}
	admin := newPricingConfigUseCase(repo, redisCache)
	ctx := context.Background()

	if _, err := admin.SaveDraft(ctx, validConfig()); err != nil {
		t.Fatalf("save draft: %v", err)
	}
	if _, err := admin.Publish(ctx, "first"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	// v1 expires, so the next quote misses and reads the store
	mr.FastForward(2 * ttl)

	var second entities.PublishedConfig
	slow := &pausingRepo{memoryRepo: repo, afterRead: func() {
		var err error
		if second, err = admin.Publish(ctx, "second"); err != nil {
			t.Fatalf("publish during fill: %v", err)
		}
	}}
	quotes := NewQuoteUseCase(slow, redisCache, QuoteSettings{Location: time.UTC, RoadDistanceFactor: 1}, zap.NewNop())

	inFlight, err := quotes.published.load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if inFlight.Version != 1 || second.Version != 2 {
		t.Fatalf("expected fill of v1 racing publish of v2, got %d and %d", inFlight.Version, second.Version)
	}

	next, err := quotes.published.load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if next.Version != 2 {
		t.Fatalf("stale fill overwrote the published snapshot: got version %d", next.Version)
	}
	cached, found, err := redisCache.Get(ctx)
	if err != nil || !found || cached.Version != 2 {
		t.Fatalf("expected v2 in cache, got %d found=%v err=%v", cached.Version, found, err)
	}
}

func TestPricingConfigUseCase_Workflow(t *testing.T) {
	repo := &memoryRepo{}
	uc := newPricingConfigUseCase(repo, noopCache{})
	ctx := context.Background()

	if _, err := uc.SaveDraft(ctx, validConfig()); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	first, err := uc.Publish(ctx, "first")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	second, err := uc.Publish(ctx, "again")
	if err != nil {
		t.Fatalf("publish again: %v", err)
	}

	t.Run("publishing twice yields identical data one version apart", func(t *testing.T) {
		if second.Version != first.Version+1 {
			t.Fatalf("expected versions %d and %d", first.Version, first.Version+1)
		}
		if !reflect.DeepEqual(first.Data, second.Data) {
			t.Fatalf("expected identical data")
		}
	})

	t.Run("published configuration stays valid", func(t *testing.T) {
		if res := uc.Validate(second.Data); !res.OK || len(res.Errors) != 0 {
			t.Fatalf("expected published data to validate, got %+v", res)
		}
	})

	t.Run("draft deletions do not touch published data until publish", func(t *testing.T) {
		loaded, err := uc.LoadConfig(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		edited, err := uc.DeleteMode(loaded.Draft.Data, entities.ModeOceanFreight)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := uc.SaveDraft(ctx, edited); err != nil {
			t.Fatalf("save: %v", err)
		}

		loaded, err = uc.LoadConfig(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if _, ok := loaded.Draft.Data[entities.ModeOceanFreight]; ok {
			t.Fatalf("expected mode removed from draft")
		}
		if _, ok := loaded.Published.Data[entities.ModeOceanFreight]; !ok {
			t.Fatalf("mode must stay published until the next publish")
		}

		third, err := uc.Publish(ctx, "drop ocean")
		if err != nil {
			t.Fatalf("publish: %v", err)
		}
		if _, ok := third.Data[entities.ModeOceanFreight]; ok || third.Version != 3 {
			t.Fatalf("unexpected third version: %+v", third)
		}
	})

	t.Run("past versions stay readable", func(t *testing.T) {
		v1, err := uc.GetVersion(ctx, 1)
		if err != nil {
			t.Fatalf("get version: %v", err)
		}
		if v1.Comment != "first" || len(v1.Data) != 2 {
			t.Fatalf("unexpected version 1: %+v", v1)
		}
		if _, err := uc.GetVersion(ctx, 99); !errors.Is(err, ErrVersionNotFound) {
			t.Fatalf("expected ErrVersionNotFound, got %v", err)
		}
		if _, err := uc.GetVersion(ctx, 0); !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("expected ErrInvalidVersion, got %v", err)
		}
	})
}

func TestPricingConfigUseCase_ModeEdits(t *testing.T) {
	uc := newPricingConfigUseCase(nil, noopCache{})
	data := validConfig()

	created, key := uc.CreateMode(data, "Express Road")
	if key != "express_road" || len(created) != 3 || len(data) != 2 {
		t.Fatalf("unexpected create result %q %v", key, created.Keys())
	}

	dup, dupKey, err := uc.DuplicateMode(created, key)
	if err != nil || dupKey != "express_road_copy" || dup[dupKey].Label != "Express Road (copy)" {
		t.Fatalf("unexpected duplicate %q %+v %v", dupKey, dup[dupKey], err)
	}

	if _, err := uc.DeleteMode(data, "nope"); !errors.Is(err, ErrModeNotFound) {
		t.Fatalf("expected ErrModeNotFound, got %v", err)
	}
}

func TestPricingConfigUseCase_Preview(t *testing.T) {
	t.Run("draft source falls back to published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		cache := mock_interfaces.NewMockIPublishedConfigCache(ctrl)
		uc := newPricingConfigUseCase(repo, cache)

		repo.EXPECT().GetDraft(gomock.Any()).Return(nil, nil)
		cache.EXPECT().Get(gomock.Any()).Return(entities.PublishedConfig{Version: 2, Data: validConfig()}, true, nil)

		preview, err := uc.Preview(context.Background(), PreviewSourceDraft, entities.ModeRoadFreight, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(preview.Points) != pricing.PreviewSteps+1 {
			t.Fatalf("expected %d points, got %d", pricing.PreviewSteps+1, len(preview.Points))
		}
		// a zero minimum is honoured, not replaced by the chart default
		if preview.StartKg != 1 {
			t.Fatalf("expected start at the tariff minimum, got %v", preview.StartKg)
		}
	})

	t.Run("draft source uses the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		draftOnly := entities.PricingConfiguration{"new_mode": pricing.DefaultTariff("New")}
		repo.EXPECT().GetDraft(gomock.Any()).Return(&entities.DraftConfig{Data: draftOnly}, nil)

		if _, err := uc.Preview(context.Background(), PreviewSourceDraft, "new_mode", 500); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		repo.EXPECT().GetPublished(gomock.Any()).Return(entities.PublishedConfig{Version: 1, Data: validConfig()}, nil)

		if _, err := uc.Preview(context.Background(), PreviewSourcePublished, "air", 0); !errors.Is(err, ErrModeNotFound) {
			t.Fatalf("expected ErrModeNotFound, got %v", err)
		}
	})

	t.Run("invalid source", func(t *testing.T) {
		uc := newPricingConfigUseCase(nil, noopCache{})
		if _, err := uc.Preview(context.Background(), "both", "road", 0); !errors.Is(err, ErrInvalidPreviewSource) {
			t.Fatalf("expected ErrInvalidPreviewSource, got %v", err)
		}
	})
}

func TestPricingConfigUseCase_GetVersion(t *testing.T) {
	t.Run("invalid version", func(t *testing.T) {
		uc := newPricingConfigUseCase(nil, noopCache{})
		if _, err := uc.GetVersion(context.Background(), 0); !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("expected ErrInvalidVersion, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		repo.EXPECT().GetVersion(gomock.Any(), 7).Return(entities.PublishedConfig{}, nil)
		if _, err := uc.GetVersion(context.Background(), 7); !errors.Is(err, ErrVersionNotFound) {
			t.Fatalf("expected ErrVersionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingConfigRepository(ctrl)
		uc := newPricingConfigUseCase(repo, noopCache{})

		repo.EXPECT().GetVersion(gomock.Any(), 2).Return(entities.PublishedConfig{Version: 2, Data: validConfig(), Comment: "q4"}, nil)
		p, err := uc.GetVersion(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Version != 2 || p.Comment != "q4" || len(p.Data) != 2 {
			t.Fatalf("unexpected snapshot: %+v", p)
		}
	})
}
