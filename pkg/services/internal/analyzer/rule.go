package analyzer

import (
	"context"

	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// RuleClassifier는 패턴 매칭 기반의 결정적 분류기입니다.
// 외부 호출이 없으므로 항상 성공합니다.
type RuleClassifier struct{}

var _ _interface.Classifier = RuleClassifier{}

// NewRuleClassifier는 규칙 기반 분류기를 생성합니다
func NewRuleClassifier() RuleClassifier {
	return RuleClassifier{}
}

func (RuleClassifier) Name() structure.Strategy {
	return structure.StrategyLocal
}

// Classify는 콘텐츠를 규칙 기반으로 판정합니다
func (c RuleClassifier) Classify(ctx context.Context, content string) (*structure.ContentVerdict, error) {
	return c.Verdict(content), nil
}

// Verdict는 오류 없이 판정을 반환합니다
func (RuleClassifier) Verdict(content string) *structure.ContentVerdict {
	matchCount := CountPatternMatches(content)
	riskScore, isMisinformation := ScoreRisk(matchCount)

	return &structure.ContentVerdict{
		IsMisinformation: isMisinformation,
		RiskScore:        riskScore,
		RiskFactors:      ExplainRiskFactors(matchCount, content),
		Analysis:         BuildAnalysis(content, matchCount, riskScore, isMisinformation),
		SuggestedTopics:  ExtractTopics(content),
		Strategy:         structure.StrategyLocal,
	}
}
