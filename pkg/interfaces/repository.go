package _interface

import (
	"context"

	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// VerdictCacheRepository는 콘텐츠 해시별 판정 캐시 저장소입니다
type VerdictCacheRepository interface {
	// Backend는 메트릭 라벨로 쓰일 저장소 이름입니다
	Backend() string

	// GetVerdict는 캐시된 판정을 가져옵니다. 없거나 만료되면 nil, nil을 반환합니다
	GetVerdict(ctx context.Context, contentHash string) (*structure.ContentVerdict, error)

	// SaveVerdict는 판정을 저장합니다
	SaveVerdict(ctx context.Context, contentHash string, verdict *structure.ContentVerdict) error
}
