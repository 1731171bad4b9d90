package model

import (
	"time"

	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// VerdictCache는 DynamoDB에 저장될 판정 캐시 아이템을 나타냅니다.
type VerdictCache struct {
	ContentHash      string    `json:"contentHash" dynamodbav:"ContentHash"`           // 프라이머리 키 (콘텐츠 SHA-256)
	IsMisinformation bool      `json:"isMisinformation" dynamodbav:"isMisinformation"` // 허위정보 여부
	RiskScore        float64   `json:"riskScore" dynamodbav:"riskScore"`               // 위험 점수
	RiskFactors      []string  `json:"riskFactors" dynamodbav:"riskFactors"`           // 위험 요인
	Analysis         string    `json:"analysis" dynamodbav:"analysis"`                 // 분석 설명
	SuggestedTopics  []string  `json:"suggestedTopics" dynamodbav:"suggestedTopics"`   // 추천 주제
	Strategy         string    `json:"strategy" dynamodbav:"strategy"`                 // 판정 전략
	CreatedAt        time.Time `json:"createdAt" dynamodbav:"createdAt"`               // 생성 시간
	ExpiresAt        time.Time `json:"expiresAt" dynamodbav:"expiresAt"`               // 만료 시간
	TTL              int64     `json:"ttl" dynamodbav:"ttl"`                           // DynamoDB TTL 속성 (epoch 초)
}

// NewVerdictCache는 판정 결과로 캐시 아이템을 생성합니다
func NewVerdictCache(contentHash string, verdict *structure.ContentVerdict, now time.Time, ttl time.Duration) *VerdictCache {
	topics := make([]string, 0, len(verdict.SuggestedTopics))
	for _, topic := range verdict.SuggestedTopics {
		topics = append(topics, string(topic))
	}

	expiresAt := now.Add(ttl)
	return &VerdictCache{
		ContentHash:      contentHash,
		IsMisinformation: verdict.IsMisinformation,
		RiskScore:        verdict.RiskScore,
		RiskFactors:      append([]string(nil), verdict.RiskFactors...),
		Analysis:         verdict.Analysis,
		SuggestedTopics:  topics,
		Strategy:         string(verdict.Strategy),
		CreatedAt:        now,
		ExpiresAt:        expiresAt,
		TTL:              expiresAt.Unix(),
	}
}

// Verdict는 캐시 아이템을 판정 결과로 되돌립니다
func (c *VerdictCache) Verdict() *structure.ContentVerdict {
	topics := make([]structure.Topic, 0, len(c.SuggestedTopics))
	for _, topic := range c.SuggestedTopics {
		topics = append(topics, structure.Topic(topic))
	}

	return &structure.ContentVerdict{
		IsMisinformation: c.IsMisinformation,
		RiskScore:        c.RiskScore,
		RiskFactors:      append([]string(nil), c.RiskFactors...),
		Analysis:         c.Analysis,
		SuggestedTopics:  topics,
		Strategy:         structure.Strategy(c.Strategy),
	}
}

// IsExpired는 주어진 시각 기준으로 캐시가 만료되었는지 확인합니다
func (c *VerdictCache) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
