package _interface

import (
	"context"

	request "github.com/sh5080/satyavadi-go/pkg/types/dtos/requests"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

// Classifier는 콘텐츠 하나를 판정하는 분석 전략입니다
type Classifier interface {
	// Name은 판정 결과에 기록될 전략 이름입니다
	Name() structure.Strategy

	// Classify는 콘텐츠의 허위정보 위험을 판정합니다
	Classify(ctx context.Context, content string) (*structure.ContentVerdict, error)
}

// AnalyzerService는 콘텐츠 분석 서비스 인터페이스입니다
type AnalyzerService interface {
	// Analyze는 콘텐츠를 분석합니다. 생성형 백엔드가 실패해도 규칙 기반 판정을 반환합니다
	Analyze(ctx context.Context, content string) *structure.ContentVerdict

	// AIEnabled는 생성형 백엔드가 설정되어 있는지 확인합니다
	AIEnabled() bool
}

// ContentTypeService는 유해 콘텐츠 유형을 탐지합니다
type ContentTypeService interface {
	DetectContentTypes(text string) structure.ContentTypeFlags
}

// SourceService는 주제에 맞는 검증된 출처를 고릅니다
type SourceService interface {
	VerifiedAlternatives(topics []structure.Topic) []structure.VerifiedSource
}

// ChatService는 대화형 응답을 생성합니다
type ChatService interface {
	// Respond는 판정 결과를 바탕으로 사용자 메시지에 답합니다
	Respond(ctx context.Context, message string, history []request.ChatMessage, verdict *structure.ContentVerdict) string
}

// ChatCompleter는 생성형 백엔드의 채팅 완성 호출을 추상화합니다
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, messages []request.ChatMessage, temperature float32, maxTokens int) (string, error)
}
