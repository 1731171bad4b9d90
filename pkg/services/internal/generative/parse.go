package generative

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	constants "github.com/sh5080/satyavadi-go/pkg/types"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// ErrUnparseable은 생성형 백엔드 응답을 판정으로 해석할 수 없는 경우입니다
var ErrUnparseable = errors.New("판정 응답 해석 실패")

// remoteVerdict는 생성형 백엔드가 돌려주는 JSON 형태입니다.
// 필수 필드 누락을 구분하기 위해 포인터를 사용합니다.
type remoteVerdict struct {
	IsMisinformation *bool    `json:"is_misinformation"`
	RiskScore        *float64 `json:"risk_score"`
	RiskFactors      []string `json:"risk_factors"`
	Analysis         string   `json:"analysis"`
	SuggestedTopics  []string `json:"suggested_topics"`
}

// ExtractJSON은 ```json 또는 ``` 코드 블록으로 감싼 응답에서 본문을 꺼냅니다
func ExtractJSON(text string) string {
	for _, fence := range []string{"```json", "```"} {
		start := strings.Index(text, fence)
		if start < 0 {
			continue
		}
		start += len(fence)

		end := strings.Index(text[start:], "```")
		if end < 0 {
			return strings.TrimSpace(text[start:])
		}
		return strings.TrimSpace(text[start : start+end])
	}
	return strings.TrimSpace(text)
}

// ParseVerdict는 응답 텍스트를 판정으로 변환합니다.
// 점수는 [0, 1]로 제한되고 빈 위험 요인은 기본 문구로 채워집니다.
// 주제가 비어 있으면 fallbackTopics를 사용합니다.
func ParseVerdict(text string, fallbackTopics func() []structure.Topic) (*structure.ContentVerdict, error) {
	var raw remoteVerdict
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if raw.IsMisinformation == nil || raw.RiskScore == nil {
		return nil, fmt.Errorf("%w: is_misinformation 또는 risk_score 누락", ErrUnparseable)
	}

	factors := make([]string, 0, len(raw.RiskFactors))
	for _, factor := range raw.RiskFactors {
		if factor = strings.TrimSpace(factor); factor != "" {
			factors = append(factors, factor)
		}
	}
	if len(factors) == 0 {
		factors = append(factors, constants.DEFAULT_RISK_FACTOR)
	}

	topics := make([]structure.Topic, 0, len(raw.SuggestedTopics))
	for _, topic := range raw.SuggestedTopics {
		if topic = strings.ToLower(strings.TrimSpace(topic)); topic != "" {
			topics = append(topics, structure.Topic(topic))
		}
	}
	if len(topics) == 0 && fallbackTopics != nil {
		topics = fallbackTopics()
	}

	return &structure.ContentVerdict{
		IsMisinformation: *raw.IsMisinformation,
		RiskScore:        clampScore(*raw.RiskScore),
		RiskFactors:      factors,
		Analysis:         strings.TrimSpace(raw.Analysis),
		SuggestedTopics:  topics,
		Strategy:         structure.StrategyRemote,
	}, nil
}

func clampScore(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
