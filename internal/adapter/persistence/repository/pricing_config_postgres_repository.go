package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/usecase/interfaces"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// PricingConfigPostgresRepository is the relational alternative to the DynamoDB
// store (CONFIG_STORE=postgres). Schema lives in the embedded migrations of the
// database package.
type PricingConfigPostgresRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigPostgresRepository)(nil)

func NewPricingConfigPostgresRepository(db *sql.DB, logger *zap.Logger) *PricingConfigPostgresRepository {
	return &PricingConfigPostgresRepository{db: db, logger: logger}
}

const selectSnapshot = `
	SELECT version, data, comment, publish_id::text, published_at
	FROM pricing_config_versions`

func (r *PricingConfigPostgresRepository) GetPublished(ctx context.Context) (entities.PublishedConfig, error) {
	const operation = "repository.PricingConfigPostgresRepository.GetPublished"

	row := r.db.QueryRowContext(ctx, selectSnapshot+` ORDER BY version DESC LIMIT 1`)
	p, err := scanSnapshot(row)
	if err != nil {
		return entities.PublishedConfig{}, fmt.Errorf("%s: %w", operation, err)
	}
	return p, nil
}

func (r *PricingConfigPostgresRepository) GetVersion(ctx context.Context, version int) (entities.PublishedConfig, error) {
	const operation = "repository.PricingConfigPostgresRepository.GetVersion"

	row := r.db.QueryRowContext(ctx, selectSnapshot+` WHERE version = $1`, version)
	p, err := scanSnapshot(row)
	if err != nil {
		return entities.PublishedConfig{}, fmt.Errorf("%s: %w", operation, err)
	}
	return p, nil
}

func (r *PricingConfigPostgresRepository) GetDraft(ctx context.Context) (*entities.DraftConfig, error) {
	const operation = "repository.PricingConfigPostgresRepository.GetDraft"

	var (
		raw   []byte
		draft entities.DraftConfig
	)
	err := r.db.QueryRowContext(ctx, `SELECT data, updated_at FROM pricing_config_draft WHERE id = 1`).
		Scan(&raw, &draft.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", operation, err)
	}

	draft.Data, err = decodeConfiguration(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return &draft, nil
}

func (r *PricingConfigPostgresRepository) SaveDraft(ctx context.Context, draft entities.DraftConfig) error {
	const operation = "repository.PricingConfigPostgresRepository.SaveDraft"

	data, err := encodeConfiguration(draft.Data)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pricing_config_draft (id, data, updated_at)
		VALUES (1, $1::jsonb, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		data, draft.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%s: upsert: %w", operation, err)
	}
	return nil
}

func (r *PricingConfigPostgresRepository) Publish(ctx context.Context, snapshot entities.PublishedConfig) (err error) {
	const operation = "repository.PricingConfigPostgresRepository.Publish"

	data, err := encodeConfiguration(snapshot.Data)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", operation, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Serialize publishers so the version check below cannot race.
	if _, err = tx.ExecContext(ctx, `LOCK TABLE pricing_config_versions IN EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("%s: lock: %w", operation, err)
	}

	var current int
	if err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM pricing_config_versions`).Scan(&current); err != nil {
		return fmt.Errorf("%s: current version: %w", operation, err)
	}
	if current != snapshot.Version-1 {
		r.logger.Warn("[pricing][repository] publish on stale version",
			zap.Int("version", snapshot.Version), zap.Int("current", current))
		err = interfaces.ErrVersionConflict
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO pricing_config_versions (version, data, comment, publish_id, published_at)
		VALUES ($1, $2::jsonb, $3, $4, $5)`,
		snapshot.Version, data, snapshot.Comment, snapshot.PublishID, snapshot.PublishedAt.UTC(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			err = interfaces.ErrVersionConflict
			return err
		}
		return fmt.Errorf("%s: insert: %w", operation, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", operation, err)
	}
	return nil
}

func scanSnapshot(row *sql.Row) (entities.PublishedConfig, error) {
	var (
		raw []byte
		p   entities.PublishedConfig
	)
	err := row.Scan(&p.Version, &raw, &p.Comment, &p.PublishID, &p.PublishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PublishedConfig{Data: entities.PricingConfiguration{}}, nil
	}
	if err != nil {
		return entities.PublishedConfig{}, fmt.Errorf("scan: %w", err)
	}

	p.Data, err = decodeConfiguration(string(raw))
	if err != nil {
		return entities.PublishedConfig{}, err
	}
	return p, nil
}
