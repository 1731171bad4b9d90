package generative

import (
	"context"
	"fmt"

	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	"github.com/sh5080/satyavadi-go/pkg/services/internal/analyzer"
	constants "github.com/sh5080/satyavadi-go/pkg/types"
	request "github.com/sh5080/satyavadi-go/pkg/types/dtos/requests"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

const classifierSystemPrompt = `You are an expert fact-checker and misinformation detection system.
Analyze the given content and determine if it contains misinformation, false claims,
or harmful content. Provide a detailed analysis including:
1. Whether the content is likely misinformation (true/false)
2. Risk score (0-1, where 1 is highest risk)
3. Key risk factors
4. Detailed analysis of why it might be misinformation
5. Suggestions for verified sources

Respond in JSON format with: is_misinformation, risk_score, risk_factors (array),
analysis (detailed text), and suggested_topics (array).`

// RemoteClassifier는 생성형 백엔드에 판정을 요청하는 분류기입니다
type RemoteClassifier struct {
	completer _interface.ChatCompleter
}

var _ _interface.Classifier = (*RemoteClassifier)(nil)

// NewRemoteClassifier는 새로운 생성형 분류기를 생성합니다
func NewRemoteClassifier(completer _interface.ChatCompleter) *RemoteClassifier {
	return &RemoteClassifier{completer: completer}
}

func (c *RemoteClassifier) Name() structure.Strategy {
	return structure.StrategyRemote
}

// Classify는 생성형 백엔드 응답을 판정으로 변환합니다
func (c *RemoteClassifier) Classify(ctx context.Context, content string) (*structure.ContentVerdict, error) {
	messages := []request.ChatMessage{
		{Role: "system", Content: classifierSystemPrompt},
		{Role: "user", Content: "Analyze this content for misinformation:\n\n" + content},
	}

	reply, err := c.completer.ChatCompletion(ctx, messages, constants.ANALYZE_TEMPERATURE, constants.ANALYZE_MAX_TOKENS)
	if err != nil {
		return nil, fmt.Errorf("생성형 판정 요청 실패: %w", err)
	}

	return ParseVerdict(reply, func() []structure.Topic {
		return analyzer.ExtractTopics(content)
	})
}
