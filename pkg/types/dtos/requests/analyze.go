package request

import (
	"strings"

	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// AnalyzeRequest는 콘텐츠 분석 요청 구조체입니다
type AnalyzeRequest struct {
	Content string `json:"content" validate:"required,min=10"`
}

// Normalize는 검증 전에 앞뒤 공백을 제거합니다. 길이 검사는 원문 기준입니다.
func (r *AnalyzeRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
}

// Text는 분석에 사용할 본문을 반환합니다
func (r *AnalyzeRequest) Text() string {
	return visibleText(r.Content)
}

// ChatMessage는 대화 기록의 메시지 하나입니다.
// 역할은 검증하지 않고 생성형 요청을 만들 때 정리합니다.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest는 대화형 분석 요청 구조체입니다
type ChatRequest struct {
	Message string        `json:"message" validate:"required,min=3"`
	History []ChatMessage `json:"history"`
}

// Normalize는 검증 전에 앞뒤 공백을 제거합니다
func (r *ChatRequest) Normalize() {
	r.Message = strings.TrimSpace(r.Message)
}

// Text는 분석에 사용할 메시지 본문을 반환합니다
func (r *ChatRequest) Text() string {
	return visibleText(r.Message)
}

// HTML이면 보이는 텍스트를 추출하고, 추출 결과가 비면 원문을 그대로 사용
func visibleText(s string) string {
	if text := utils.ExtractText(s); text != "" {
		return text
	}
	return s
}
