package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sh5080/satyavadi-go/pkg/configs"
	request "github.com/sh5080/satyavadi-go/pkg/types/dtos/requests"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// ErrNoChoices는 생성형 백엔드가 빈 응답을 돌려준 경우입니다
var ErrNoChoices = errors.New("OpenAI 응답에 choices가 없습니다")

// OpenAIAPIClient는 OpenAI 채팅 완성 요청을 처리하는 클라이언트입니다.
type OpenAIAPIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIAPIClient는 새로운 OpenAI API 클라이언트를 생성합니다.
func NewOpenAIAPIClient(config *configs.EnvConfig) *OpenAIAPIClient {
	clientConfig := openai.DefaultConfig(config.OpenAI.APIKey)
	if config.OpenAI.BaseURL != "" {
		clientConfig.BaseURL = config.OpenAI.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: config.OpenAI.Timeout,
	}

	return &OpenAIAPIClient{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   config.OpenAI.Model,
		timeout: config.OpenAI.Timeout,
	}
}

// Model은 요청에 사용하는 모델 이름입니다
func (c *OpenAIAPIClient) Model() string {
	return c.model
}

// ChatCompletion은 메시지 목록으로 채팅 완성 API를 호출하고 첫 번째 응답 본문을 반환합니다.
func (c *OpenAIAPIClient) ChatCompletion(ctx context.Context, messages []request.ChatMessage, temperature float32, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	startTime := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(startTime).Seconds()

	if err != nil {
		utils.RecordApiCall("openai", apiErrorStatus(err), duration)
		return "", fmt.Errorf("OpenAI API 호출 실패: %w", err)
	}
	utils.RecordApiCall("openai", http.StatusOK, duration)

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	utils.Debug("openai", "응답 수신 (model=%s, finish_reason=%s)", c.model, resp.Choices[0].FinishReason)
	return resp.Choices[0].Message.Content, nil
}

// apiErrorStatus는 오류에서 HTTP 상태 코드를 꺼냅니다. 네트워크 오류 등은 0입니다
func apiErrorStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
