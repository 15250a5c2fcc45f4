package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	activeItemID = "active"
	draftItemID  = "draft"
)

// snapshotItem is stored both as the "active" head and as an immutable
// "version#NNNNNN" record. Data is the configuration as JSON text: tariff
// numbers may be missing (NaN), which DynamoDB numbers cannot hold.
type snapshotItem struct {
	ID          string `dynamodbav:"id"`
	Version     int    `dynamodbav:"version"`
	Data        string `dynamodbav:"data"`
	Comment     string `dynamodbav:"comment"`
	PublishID   string `dynamodbav:"publish_id"`
	PublishedAt string `dynamodbav:"published_at"`
}

type draftItem struct {
	ID        string `dynamodbav:"id"`
	Data      string `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PricingConfigDynamoRepository persists the pricing configuration in a
// single DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// Items:
//   - "draft": the working copy (last write wins)
//   - "version#000001"...: one immutable item per published version
//   - "active": copy of the current version, guarded by its version number
//
// Publish writes the version item and the new head in one transaction so a
// quote never sees a half-published configuration.
type PricingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client, tableName string, logger *zap.Logger) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		logger:    logger,
	}
}

func (r *PricingConfigDynamoRepository) GetPublished(ctx context.Context) (entities.PublishedConfig, error) {
	return r.getSnapshot(ctx, activeItemID)
}

func (r *PricingConfigDynamoRepository) GetVersion(ctx context.Context, version int) (entities.PublishedConfig, error) {
	if version <= 0 {
		return entities.PublishedConfig{}, nil
	}
	return r.getSnapshot(ctx, versionItemID(version))
}

func (r *PricingConfigDynamoRepository) getSnapshot(ctx context.Context, id string) (entities.PublishedConfig, error) {
	const operation = "repository.PricingConfigDynamoRepository.getSnapshot"

	item, err := r.getItem(ctx, id)
	if err != nil {
		return entities.PublishedConfig{}, fmt.Errorf("%s: %w", operation, err)
	}
	if len(item) == 0 {
		return entities.PublishedConfig{Data: entities.PricingConfiguration{}}, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.PublishedConfig{}, fmt.Errorf("%s: unmarshal %s: %w", operation, id, err)
	}
	return fromSnapshotItem(it)
}

func (r *PricingConfigDynamoRepository) GetDraft(ctx context.Context) (*entities.DraftConfig, error) {
	const operation = "repository.PricingConfigDynamoRepository.GetDraft"

	item, err := r.getItem(ctx, draftItemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	if len(item) == 0 {
		return nil, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return nil, fmt.Errorf("%s: unmarshal: %w", operation, err)
	}
	data, err := decodeConfiguration(it.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return &entities.DraftConfig{Data: data, UpdatedAt: updatedAt}, nil
}

func (r *PricingConfigDynamoRepository) SaveDraft(ctx context.Context, draft entities.DraftConfig) error {
	const operation = "repository.PricingConfigDynamoRepository.SaveDraft"

	data, err := encodeConfiguration(draft.Data)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	av, err := attributevalue.MarshalMap(draftItem{
		ID:        draftItemID,
		Data:      data,
		UpdatedAt: draft.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", operation, err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("%s: put: %w", operation, err)
	}
	return nil
}

func (r *PricingConfigDynamoRepository) Publish(ctx context.Context, snapshot entities.PublishedConfig) error {
	const operation = "repository.PricingConfigDynamoRepository.Publish"

	versionItem, err := toSnapshotItem(versionItemID(snapshot.Version), snapshot)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	versionAV, err := attributevalue.MarshalMap(versionItem)
	if err != nil {
		return fmt.Errorf("%s: marshal version: %w", operation, err)
	}

	head := versionItem
	head.ID = activeItemID
	headAV, err := attributevalue.MarshalMap(head)
	if err != nil {
		return fmt.Errorf("%s: marshal head: %w", operation, err)
	}

	// The head may only move forward from the version the snapshot was built on.
	headCondition := "attribute_not_exists(#id)"
	headNames := map[string]string{"#id": "id"}
	var headValues map[string]types.AttributeValue
	if snapshot.Version > 1 {
		headCondition = "#version = :prev"
		headNames = map[string]string{"#version": "version"}
		headValues = map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberN{Value: strconv.Itoa(snapshot.Version - 1)},
		}
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     versionAV,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName:                 aws.String(r.tableName),
					Item:                      headAV,
					ConditionExpression:       aws.String(headCondition),
					ExpressionAttributeNames:  headNames,
					ExpressionAttributeValues: headValues,
				},
			},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			r.logger.Warn("[pricing][repository] publish transaction canceled",
				zap.Int("version", snapshot.Version), zap.Error(err))
			return interfaces.ErrVersionConflict
		}
		return fmt.Errorf("%s: transact: %w", operation, err)
	}
	return nil
}

func (r *PricingConfigDynamoRepository) getItem(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	return out.Item, nil
}

func versionItemID(version int) string {
	return fmt.Sprintf("version#%06d", version)
}

func toSnapshotItem(id string, p entities.PublishedConfig) (snapshotItem, error) {
	data, err := encodeConfiguration(p.Data)
	if err != nil {
		return snapshotItem{}, err
	}
	return snapshotItem{
		ID:          id,
		Version:     p.Version,
		Data:        data,
		Comment:     p.Comment,
		PublishID:   p.PublishID,
		PublishedAt: p.PublishedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSnapshotItem(it snapshotItem) (entities.PublishedConfig, error) {
	data, err := decodeConfiguration(it.Data)
	if err != nil {
		return entities.PublishedConfig{}, err
	}
	publishedAt, _ := time.Parse(time.RFC3339Nano, it.PublishedAt)
	return entities.PublishedConfig{
		Version:     it.Version,
		Data:        data,
		Comment:     it.Comment,
		PublishID:   it.PublishID,
		PublishedAt: publishedAt,
	}, nil
}

func encodeConfiguration(cfg entities.PricingConfiguration) (string, error) {
	if cfg == nil {
		cfg = entities.PricingConfiguration{}
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode configuration: %w", err)
	}
	return string(b), nil
}

func decodeConfiguration(s string) (entities.PricingConfiguration, error) {
	cfg := entities.PricingConfiguration{}
	if s == "" {
		return cfg, nil
	}
	if err := json.Unmarshal([]byte(s), &cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	return cfg, nil
}
