package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sh5080/satyavadi-go/pkg/configs"
	"github.com/sh5080/satyavadi-go/pkg/db"
	model "github.com/sh5080/satyavadi-go/pkg/types/models"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

const verdictHashKey = "ContentHash"

// DynamoVerdictRepository는 판정 캐시를 DynamoDB에 저장하고 조회하는 레포지토리입니다.
type DynamoVerdictRepository struct {
	client    db.DynamoDBAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

// NewDynamoVerdictRepository는 새로운 DynamoDB 판정 캐시 레포지토리를 생성합니다.
func NewDynamoVerdictRepository(client db.DynamoDBAPI, tableName string, ttl time.Duration) *DynamoVerdictRepository {
	return &DynamoVerdictRepository{
		client:    client,
		tableName: tableName,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *DynamoVerdictRepository) Backend() string {
	return configs.CacheBackendDynamoDB
}

// CreateTableIfNotExists는 판정 캐시 테이블이 없을 경우 생성합니다.
func (r *DynamoVerdictRepository) CreateTableIfNotExists(ctx context.Context) error {
	exists, err := r.tableExists(ctx)
	if err != nil {
		return fmt.Errorf("테이블 존재 여부 확인 실패: %w", err)
	}

	// 테이블이 이미 존재하면 생성하지 않음
	if exists {
		return nil
	}

	_, err = r.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String(verdictHashKey),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String(verdictHashKey),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	// 테이블 생성 완료될 때까지 대기
	waiter := dynamodb.NewTableExistsWaiter(r.client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	}, 2*time.Minute)
	if err != nil {
		return fmt.Errorf("테이블 생성 완료 대기 실패: %w", err)
	}

	utils.Info("dynamodb", "판정 캐시 테이블 생성 완료: %s", r.tableName)
	return nil
}

// tableExists는 테이블이 존재하는지 확인합니다.
func (r *DynamoVerdictRepository) tableExists(ctx context.Context) (bool, error) {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetVerdict는 콘텐츠 해시로 판정 캐시를 조회합니다.
func (r *DynamoVerdictRepository) GetVerdict(ctx context.Context, contentHash string) (*structure.ContentVerdict, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(contentHash),
	})
	if err != nil {
		return nil, fmt.Errorf("판정 캐시 조회 실패: %w", err)
	}

	// 결과가 없는 경우
	if result.Item == nil {
		return nil, nil
	}

	var cache model.VerdictCache
	if err := attributevalue.UnmarshalMap(result.Item, &cache); err != nil {
		return nil, fmt.Errorf("판정 캐시 언마샬 실패: %w", err)
	}

	// DynamoDB TTL 삭제는 지연되므로 만료 여부를 직접 확인
	if cache.IsExpired(r.now()) {
		if err := r.DeleteVerdict(ctx, contentHash); err != nil {
			utils.Warn("dynamodb", "만료된 판정 캐시 삭제 실패: %v", err)
		}
		return nil, nil
	}

	return cache.Verdict(), nil
}

// SaveVerdict는 판정을 캐시에 저장합니다.
func (r *DynamoVerdictRepository) SaveVerdict(ctx context.Context, contentHash string, verdict *structure.ContentVerdict) error {
	cache := model.NewVerdictCache(contentHash, verdict, r.now(), r.ttl)

	item, err := attributevalue.MarshalMap(cache)
	if err != nil {
		return fmt.Errorf("판정 캐시 마샬 실패: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("판정 캐시 저장 실패: %w", err)
	}

	return nil
}

// DeleteVerdict는 콘텐츠 해시로 판정 캐시를 삭제합니다.
func (r *DynamoVerdictRepository) DeleteVerdict(ctx context.Context, contentHash string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(contentHash),
	})
	if err != nil {
		return fmt.Errorf("판정 캐시 삭제 실패: %w", err)
	}

	return nil
}

func (r *DynamoVerdictRepository) key(contentHash string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		verdictHashKey: &types.AttributeValueMemberS{Value: contentHash},
	}
}
