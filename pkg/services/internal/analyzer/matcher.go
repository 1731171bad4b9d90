package analyzer

import (
	"strings"

	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// CountPatternMatches는 텍스트와 일치하는 위험 패턴의 개수를 반환합니다.
// 한 패턴이 여러 번 등장해도 한 번으로 셉니다.
func CountPatternMatches(text string) int {
	count := 0
	for _, pattern := range structure.RISK_PATTERNS {
		if pattern.Regex.MatchString(text) {
			count++
		}
	}
	return count
}

// MatchedPatterns는 텍스트와 일치한 패턴 유형을 순서대로 반환합니다
func MatchedPatterns(text string) []structure.PatternType {
	var matched []structure.PatternType
	for _, pattern := range structure.RISK_PATTERNS {
		if pattern.Regex.MatchString(text) {
			matched = append(matched, pattern.Pattern)
		}
	}
	return matched
}

// containsAny는 소문자 텍스트에 키워드가 하나라도 포함되어 있는지 확인합니다
func containsAny(lowerText string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowerText, keyword) {
			return true
		}
	}
	return false
}
