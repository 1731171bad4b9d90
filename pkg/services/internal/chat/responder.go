package chat

import (
	"context"
	"fmt"
	"strings"

	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	constants "github.com/sh5080/satyavadi-go/pkg/types"
	request "github.com/sh5080/satyavadi-go/pkg/types/dtos/requests"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

const personaSystemPrompt = `You are SATYAVADI, a helpful AI assistant that detects misinformation and verifies content.
You provide friendly, conversational responses while analyzing content for misinformation, false claims, hate speech,
fear spreading, violence, manipulation, and political propaganda. Always be helpful, clear, and provide verified sources when possible.
Format your responses naturally with markdown when appropriate.`

// Responder는 대화형 응답을 생성하는 서비스입니다.
// completer가 없거나 호출이 실패하면 판정 기반 템플릿으로 응답합니다.
type Responder struct {
	completer _interface.ChatCompleter
}

var _ _interface.ChatService = (*Responder)(nil)

// NewResponder는 새로운 대화 응답 서비스를 생성합니다
func NewResponder(completer _interface.ChatCompleter) *Responder {
	return &Responder{completer: completer}
}

// Respond는 사용자 메시지에 대한 응답을 반환합니다
func (r *Responder) Respond(ctx context.Context, message string, history []request.ChatMessage, verdict *structure.ContentVerdict) string {
	if r.completer == nil {
		return TemplateResponse(verdict)
	}

	reply, err := r.completer.ChatCompletion(ctx, BuildMessages(message, history), constants.CHAT_TEMPERATURE, constants.CHAT_MAX_TOKENS)
	if err != nil {
		utils.Warn("chat", "생성형 응답 실패, 템플릿 응답 사용: %v", err)
		utils.RecordFallback("chat")
		return TemplateResponse(verdict)
	}
	if strings.TrimSpace(reply) == "" {
		utils.Warn("chat", "생성형 응답이 비어 있음, 템플릿 응답 사용")
		utils.RecordFallback("chat")
		return TemplateResponse(verdict)
	}

	return reply
}

// 대화 기록에서 허용하는 역할
var historyRoles = map[string]struct{}{
	"system":    {},
	"user":      {},
	"assistant": {},
}

// BuildMessages는 시스템 프롬프트, 최근 대화 기록, 사용자 메시지 순으로 요청 메시지를 구성합니다.
// 역할이 없거나 알 수 없는 기록은 제외합니다.
func BuildMessages(message string, history []request.ChatMessage) []request.ChatMessage {
	history = validHistory(history)
	if len(history) > constants.CHAT_HISTORY_LIMIT {
		history = history[len(history)-constants.CHAT_HISTORY_LIMIT:]
	}

	messages := make([]request.ChatMessage, 0, len(history)+2)
	messages = append(messages, request.ChatMessage{Role: "system", Content: personaSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, request.ChatMessage{Role: "user", Content: message})
	return messages
}

func validHistory(history []request.ChatMessage) []request.ChatMessage {
	valid := make([]request.ChatMessage, 0, len(history))
	for _, m := range history {
		role := strings.ToLower(strings.TrimSpace(m.Role))
		if _, ok := historyRoles[role]; !ok {
			utils.Debug("chat", "알 수 없는 대화 기록 역할 제외: %q", m.Role)
			continue
		}
		valid = append(valid, request.ChatMessage{Role: role, Content: m.Content})
	}
	return valid
}

// TemplateResponse는 판정 결과로 마크다운 응답을 만듭니다
func TemplateResponse(verdict *structure.ContentVerdict) string {
	var b strings.Builder
	riskLevel := int(verdict.RiskScore * 100)

	switch {
	case verdict.IsMisinformation || verdict.RiskScore > constants.STATUS_FAKE_SCORE:
		b.WriteString("⚠️ **High Risk Detected**\n\nI've analyzed your message and found strong indicators of potential misinformation.\n\n")
		writeFactors(&b, "**Key concerns:**\n", verdict.RiskFactors)
		fmt.Fprintf(&b, "\n**Risk Level:** %d%% (High)\n\n", riskLevel)
		b.WriteString("I recommend verifying this information with trusted sources before sharing or acting on it.")
	case verdict.RiskScore > constants.STATUS_RISKY_SCORE:
		b.WriteString("⚠️ **Moderate Risk Detected**\n\nI've reviewed your message and found some concerning patterns.\n\n")
		writeFactors(&b, "**Concerns identified:**\n", verdict.RiskFactors)
		fmt.Fprintf(&b, "\n**Risk Level:** %d%% (Medium)\n\n", riskLevel)
		b.WriteString("Please verify this information with reliable sources.")
	default:
		b.WriteString("✅ **Low Risk**\n\nI've analyzed your message and it appears relatively safe.\n\n")
		fmt.Fprintf(&b, "**Risk Level:** %d%% (Low)\n\n", riskLevel)
		b.WriteString("However, always verify important claims with trusted sources.")
	}

	return b.String()
}

func writeFactors(b *strings.Builder, heading string, factors []string) {
	if len(factors) == 0 {
		return
	}
	b.WriteString(heading)
	for _, factor := range factors {
		fmt.Fprintf(b, "- %s\n", factor)
	}
}
