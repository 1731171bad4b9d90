package response

import structure "github.com/sh5080/satyavadi-go/pkg/types/structures"

// Analyze는 콘텐츠 분석 요청에 대한 응답을 나타냅니다.
type Analyze struct {
	Success          bool                       `json:"success"`
	AnalysisID       string                     `json:"analysis_id"`
	ContentLength    int                        `json:"content_length"`
	ProcessingTime   string                     `json:"processing_time"`
	IsMisinformation bool                       `json:"is_misinformation"`
	RiskScore        float64                    `json:"risk_score"`
	RiskFactors      []string                   `json:"risk_factors"`
	Analysis         string                     `json:"analysis"`
	Alternatives     []structure.VerifiedSource `json:"alternatives"`
	Timestamp        string                     `json:"timestamp"`
}

// ChatAnalysis는 대화 응답에 포함되는 분석 결과입니다.
type ChatAnalysis struct {
	IsMisinformation bool                       `json:"is_misinformation"`
	RiskScore        float64                    `json:"risk_score"`
	RiskFactors      []string                   `json:"risk_factors"`
	Alternatives     []structure.VerifiedSource `json:"alternatives"`
	Status           structure.Status           `json:"status"`
	StatusColor      string                     `json:"status_color"`
	ContentTypes     structure.ContentTypeFlags `json:"content_types"`
}

// Chat은 대화형 분석 요청에 대한 응답을 나타냅니다.
type Chat struct {
	Success        bool         `json:"success"`
	Response       string       `json:"response"`
	Analysis       ChatAnalysis `json:"analysis"`
	ProcessingTime string       `json:"processing_time"`
	Timestamp      string       `json:"timestamp"`
}
