package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	constants "github.com/sh5080/satyavadi-go/pkg/types"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// ExplainRiskFactors는 사람이 읽을 수 있는 위험 요인 목록을 만듭니다.
// 해당하는 요인이 없으면 기본 문구 하나만 반환합니다.
func ExplainRiskFactors(matchCount int, text string) []string {
	factors := make([]string, 0, 3)

	if matchCount > 0 {
		factors = append(factors, fmt.Sprintf("Contains %d suspicious language pattern(s)", matchCount))
	}

	if utf8.RuneCountInString(text) < constants.SHORT_CONTENT_LENGTH {
		factors = append(factors, constants.SHORT_CONTENT_FACTOR)
	}

	if containsAny(strings.ToLower(text), structure.UNSUBSTANTIATED_CLAIM_KEYWORDS) {
		factors = append(factors, constants.UNSUBSTANTIATED_CLAIM)
	}

	if len(factors) == 0 {
		factors = append(factors, constants.DEFAULT_RISK_FACTOR)
	}

	return factors
}
