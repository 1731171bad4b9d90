package structure

import constants "github.com/sh5080/satyavadi-go/pkg/types"

type Topic string

const (
	TopicHealth   Topic = "health"
	TopicScience  Topic = "science"
	TopicPolitics Topic = "politics"
	TopicGeneral  Topic = "general"
)

// Strategy는 판정을 만든 분석 방식입니다
type Strategy string

const (
	StrategyRemote Strategy = "remote" // 생성형 백엔드
	StrategyLocal  Strategy = "local"  // 규칙 기반
)

// ContentVerdict는 요청 하나에 대한 허위정보 위험 판정입니다
type ContentVerdict struct {
	IsMisinformation bool     `json:"is_misinformation"`
	RiskScore        float64  `json:"risk_score"`
	RiskFactors      []string `json:"risk_factors"`
	Analysis         string   `json:"analysis"`
	SuggestedTopics  []Topic  `json:"suggested_topics"`
	Strategy         Strategy `json:"-"`
}

type Status string

const (
	StatusFake     Status = "Fake"
	StatusRisky    Status = "Risky"
	StatusMixed    Status = "Mixed"
	StatusVerified Status = "Verified"
)

// STATUS_COLORS는 상태별 표시 색상입니다
var STATUS_COLORS = map[Status]string{
	StatusFake:     "#ef4444",
	StatusRisky:    "#f59e0b",
	StatusMixed:    "#fbbf24",
	StatusVerified: "#10b981",
}

// Color는 상태의 표시 색상입니다
func (s Status) Color() string {
	return STATUS_COLORS[s]
}

// Status는 위험 점수 구간에 따라 판정 상태를 반환합니다
func (v *ContentVerdict) Status() Status {
	switch {
	case v.IsMisinformation || v.RiskScore > constants.STATUS_FAKE_SCORE:
		return StatusFake
	case v.RiskScore > constants.STATUS_RISKY_SCORE:
		return StatusRisky
	case v.RiskScore > constants.STATUS_MIXED_SCORE:
		return StatusMixed
	default:
		return StatusVerified
	}
}

// ContentType은 위험 점수와 별개로 탐지하는 유해 콘텐츠 유형입니다
type ContentType string

const (
	ContentTypeFearSpreading       ContentType = "fear_spreading"
	ContentTypeHateSpeech          ContentType = "hate_speech"
	ContentTypeViolence            ContentType = "violence"
	ContentTypeManipulation        ContentType = "manipulation"
	ContentTypePoliticalPropaganda ContentType = "political_propaganda"
)

type ContentTypeFlag struct {
	Detected   bool    `json:"detected"`
	Confidence float64 `json:"confidence"`
}

type ContentTypeFlags map[ContentType]ContentTypeFlag
