package detector

import (
	"context"
	"errors"
	"net"

	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	"github.com/sh5080/satyavadi-go/pkg/services/internal/analyzer"
	"github.com/sh5080/satyavadi-go/pkg/services/internal/generative"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// 폴백 사유 (메트릭 라벨)
const (
	FallbackReasonTimeout = "timeout"
	FallbackReasonParse   = "parse"
	FallbackReasonRequest = "request"
)

// FallbackClassifier는 생성형 분류기를 먼저 시도하고 실패하면 규칙 기반으로 판정하는 서비스입니다.
// 생성형 분류기의 오류는 호출자에게 전달되지 않습니다.
type FallbackClassifier struct {
	remote _interface.Classifier
	local  analyzer.RuleClassifier
	cache  _interface.VerdictCacheRepository
}

var _ _interface.AnalyzerService = (*FallbackClassifier)(nil)

// NewFallbackClassifier는 새로운 분석 서비스를 생성합니다.
// remote와 cache는 nil일 수 있습니다.
func NewFallbackClassifier(remote _interface.Classifier, cache _interface.VerdictCacheRepository) *FallbackClassifier {
	return &FallbackClassifier{
		remote: remote,
		local:  analyzer.NewRuleClassifier(),
		cache:  cache,
	}
}

// AIEnabled는 생성형 분류기가 설정되어 있는지 확인합니다
func (s *FallbackClassifier) AIEnabled() bool {
	return s.remote != nil
}

// Analyze는 콘텐츠를 판정합니다. 항상 판정을 반환합니다
func (s *FallbackClassifier) Analyze(ctx context.Context, content string) *structure.ContentVerdict {
	verdict := s.analyze(ctx, content)
	utils.RecordClassification(string(verdict.Strategy), verdict.IsMisinformation)
	return verdict
}

func (s *FallbackClassifier) analyze(ctx context.Context, content string) *structure.ContentVerdict {
	if s.remote == nil {
		return s.localVerdict(content)
	}

	// 캐시는 생성형 판정만 보관
	hash := utils.ContentHash(content)
	if cached := s.lookup(ctx, hash); cached != nil {
		return cached
	}

	verdict, err := s.remote.Classify(ctx, content)
	if err != nil {
		reason := fallbackReason(err)
		utils.Warn("detector", "생성형 판정 실패, 규칙 기반으로 전환 (reason=%s): %v", reason, err)
		utils.RecordFallback(reason)
		return s.localVerdict(content)
	}

	s.store(ctx, hash, verdict)
	return verdict
}

func (s *FallbackClassifier) localVerdict(content string) *structure.ContentVerdict {
	verdict := s.local.Verdict(content)
	utils.Debug("detector", "규칙 기반 판정: patterns=%v score=%.2f", analyzer.MatchedPatterns(content), verdict.RiskScore)
	return verdict
}

func (s *FallbackClassifier) lookup(ctx context.Context, hash string) *structure.ContentVerdict {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.GetVerdict(ctx, hash)
	if err != nil {
		utils.Warn("detector", "판정 캐시 조회 실패: %v", err)
		return nil
	}

	utils.RecordCache(s.cache.Backend(), cached != nil)
	if cached != nil {
		cached.Strategy = structure.StrategyRemote
	}
	return cached
}

func (s *FallbackClassifier) store(ctx context.Context, hash string, verdict *structure.ContentVerdict) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SaveVerdict(ctx, hash, verdict); err != nil {
		utils.Warn("detector", "판정 캐시 저장 실패: %v", err)
	}
}

// fallbackReason은 오류를 메트릭 라벨로 분류합니다
func fallbackReason(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return FallbackReasonTimeout
	case errors.Is(err, generative.ErrUnparseable):
		return FallbackReasonParse
	default:
		return FallbackReasonRequest
	}
}
