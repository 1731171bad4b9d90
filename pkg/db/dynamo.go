package db

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sh5080/satyavadi-go/pkg/configs"
)

// DynamoDBAPI는 저장소가 사용하는 DynamoDB 작업만 모은 인터페이스입니다.
// *dynamodb.Client가 이를 만족하며 테스트에서는 가짜 구현으로 대체합니다.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// NewDynamoDBClient는 설정에 맞는 DynamoDB 클라이언트를 생성합니다.
func NewDynamoDBClient(ctx context.Context, config *configs.EnvConfig) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.AWS.Region),
	}

	// AWS 자격증명이 설정되어 있으면 고정 자격증명, 아니면 기본 프로바이더 체인 사용
	if config.AWS.AccessKeyID != "" && config.AWS.SecretAccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		)
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %w", err)
	}

	// 로컬 DynamoDB 등 엔드포인트 지정
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if config.AWS.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(config.AWS.DynamoDBEndpoint)
		}
	})

	return client, nil
}
