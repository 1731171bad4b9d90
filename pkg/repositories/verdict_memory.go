package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sh5080/satyavadi-go/pkg/configs"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	model "github.com/sh5080/satyavadi-go/pkg/types/models"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// InMemoryVerdictRepository는 인메모리 판정 캐시 구현체입니다
type InMemoryVerdictRepository struct {
	// 판정 캐시 맵 (콘텐츠 해시 -> 결과)
	cache     map[string]*model.VerdictCache
	cacheLock sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
}

// NewInMemoryVerdictRepository는 새 인메모리 판정 저장소를 생성합니다
func NewInMemoryVerdictRepository(ttl time.Duration) _interface.VerdictCacheRepository {
	return newInMemoryVerdictRepository(ttl, time.Now)
}

func newInMemoryVerdictRepository(ttl time.Duration, now func() time.Time) *InMemoryVerdictRepository {
	return &InMemoryVerdictRepository{
		cache: make(map[string]*model.VerdictCache),
		ttl:   ttl,
		now:   now,
	}
}

func (db *InMemoryVerdictRepository) Backend() string {
	return configs.CacheBackendMemory
}

// GetVerdict는 콘텐츠 해시에 대한 판정 캐시를 가져옵니다
func (db *InMemoryVerdictRepository) GetVerdict(ctx context.Context, contentHash string) (*structure.ContentVerdict, error) {
	if contentHash == "" {
		return nil, fmt.Errorf("콘텐츠 해시가 비어 있습니다")
	}

	db.cacheLock.RLock()
	cache, exists := db.cache[contentHash]
	db.cacheLock.RUnlock()

	if !exists {
		return nil, nil // 캐시 없음 (에러 아님)
	}

	if cache.IsExpired(db.now()) {
		db.cacheLock.Lock()
		// 그 사이 새로 저장된 항목은 지우지 않음
		if current, ok := db.cache[contentHash]; ok && current == cache {
			delete(db.cache, contentHash)
		}
		db.cacheLock.Unlock()
		return nil, nil
	}

	return cache.Verdict(), nil
}

// SaveVerdict는 콘텐츠 해시에 대한 판정을 저장합니다
func (db *InMemoryVerdictRepository) SaveVerdict(ctx context.Context, contentHash string, verdict *structure.ContentVerdict) error {
	if contentHash == "" {
		return fmt.Errorf("콘텐츠 해시가 비어 있습니다")
	}
	if verdict == nil {
		return fmt.Errorf("저장할 판정이 없습니다")
	}

	item := model.NewVerdictCache(contentHash, verdict, db.now(), db.ttl)

	db.cacheLock.Lock()
	defer db.cacheLock.Unlock()
	db.cache[contentHash] = item

	return nil
}
