package analyzer

import (
	"math"

	constants "github.com/sh5080/satyavadi-go/pkg/types"
)

// ScoreRisk는 패턴 일치 수로 위험 점수와 허위정보 여부를 계산합니다.
// 일치가 없어도 기본 점수 0.3이 부여되며 최대 0.95를 넘지 않습니다.
func ScoreRisk(matchCount int) (float64, bool) {
	riskScore := math.Min(constants.BASE_RISK_SCORE+float64(matchCount)*constants.RISK_SCORE_INCREMENT, constants.MAX_RISK_SCORE)
	isMisinformation := matchCount >= constants.MISINFO_MATCH_COUNT || riskScore > constants.MISINFO_RISK_SCORE
	return riskScore, isMisinformation
}

// RiskLevel은 위험 점수를 High, Medium, Low 중 하나로 나눕니다
func RiskLevel(riskScore float64) string {
	switch {
	case riskScore > constants.MISINFO_RISK_SCORE:
		return "High"
	case riskScore > constants.MEDIUM_RISK_SCORE:
		return "Medium"
	default:
		return "Low"
	}
}
