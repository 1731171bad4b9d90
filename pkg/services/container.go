package service

import (
	"context"
	"fmt"

	client "github.com/sh5080/satyavadi-go/pkg/clients"
	"github.com/sh5080/satyavadi-go/pkg/configs"
	"github.com/sh5080/satyavadi-go/pkg/db"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	repository "github.com/sh5080/satyavadi-go/pkg/repositories"
	"github.com/sh5080/satyavadi-go/pkg/services/external"
	"github.com/sh5080/satyavadi-go/pkg/services/internal/analyzer"
	"github.com/sh5080/satyavadi-go/pkg/services/internal/chat"
	"github.com/sh5080/satyavadi-go/pkg/services/internal/detector"
	"github.com/sh5080/satyavadi-go/pkg/services/internal/generative"
	"github.com/sh5080/satyavadi-go/pkg/services/internal/sources"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다
func NewServiceContainer(ctx context.Context, config *configs.EnvConfig) (*_interface.ServiceContainer, error) {
	var (
		completer _interface.ChatCompleter
		remote    _interface.Classifier
	)
	if config.AIEnabled() {
		openaiClient := client.NewOpenAIAPIClient(config)
		completer = openaiClient
		remote = generative.NewRemoteClassifier(openaiClient)
		utils.Info("container", "생성형 백엔드 사용 (model=%s)", openaiClient.Model())
	} else {
		utils.Info("container", "OPENAI_API_KEY 미설정, 규칙 기반 분석만 사용")
	}

	cache, err := NewVerdictCache(ctx, config)
	if err != nil {
		return nil, err
	}

	return &_interface.ServiceContainer{
		AnalyzerService:     detector.NewFallbackClassifier(remote, cache),
		ContentTypeService:  analyzer.NewContentTypeService(),
		SourceService:       sources.NewSelector(),
		ChatService:         chat.NewResponder(completer),
		ServerStatusService: external.NewServerStatusService(config.Server.AppName, config.AIEnabled()),
	}, nil
}

// NewVerdictCache는 설정된 백엔드의 판정 캐시를 생성합니다. none이면 nil을 반환합니다
func NewVerdictCache(ctx context.Context, config *configs.EnvConfig) (_interface.VerdictCacheRepository, error) {
	switch config.Cache.Backend {
	case configs.CacheBackendMemory:
		utils.Info("container", "인메모리 판정 캐시 사용 (ttl=%s)", config.Cache.TTL)
		return repository.NewInMemoryVerdictRepository(config.Cache.TTL), nil
	case configs.CacheBackendDynamoDB:
		dynamoClient, err := db.NewDynamoDBClient(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("DynamoDB 클라이언트 생성 실패: %w", err)
		}
		repo := repository.NewDynamoVerdictRepository(dynamoClient, config.AWS.Tables.VerdictCache, config.Cache.TTL)
		if err := repo.CreateTableIfNotExists(ctx); err != nil {
			return nil, fmt.Errorf("판정 캐시 테이블 준비 실패: %w", err)
		}
		utils.Info("container", "DynamoDB 판정 캐시 사용 (table=%s, ttl=%s)", config.AWS.Tables.VerdictCache, config.Cache.TTL)
		return repo, nil
	default:
		return nil, nil
	}
}
