package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	request "github.com/sh5080/satyavadi-go/pkg/types/dtos/requests"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

type fakeCompleter struct {
	reply       string
	err         error
	messages    []request.ChatMessage
	temperature float32
	maxTokens   int
}

func (f *fakeCompleter) ChatCompletion(ctx context.Context, messages []request.ChatMessage, temperature float32, maxTokens int) (string, error) {
	f.messages = messages
	f.temperature = temperature
	f.maxTokens = maxTokens
	return f.reply, f.err
}

func fakeVerdict() *structure.ContentVerdict {
	return &structure.ContentVerdict{
		IsMisinformation: true,
		RiskScore:        0.75,
		RiskFactors: []string{
			"Contains 3 suspicious language pattern(s)",
			"Very short content (may lack context)",
		},
	}
}

func TestTemplateResponse(t *testing.T) {
	t.Run("high risk", func(t *testing.T) {
		response := TemplateResponse(fakeVerdict())
		assert.Contains(t, response, "⚠️ **High Risk Detected**")
		assert.Contains(t, response, "**Key concerns:**\n- Contains 3 suspicious language pattern(s)\n- Very short content (may lack context)\n")
		assert.Contains(t, response, "**Risk Level:** 75% (High)")
	})

	t.Run("moderate risk", func(t *testing.T) {
		response := TemplateResponse(&structure.ContentVerdict{RiskScore: 0.5, RiskFactors: []string{"Something odd"}})
		assert.Contains(t, response, "⚠️ **Moderate Risk Detected**")
		assert.Contains(t, response, "**Concerns identified:**\n- Something odd\n")
		assert.Contains(t, response, "**Risk Level:** 50% (Medium)")
	})

	t.Run("low risk", func(t *testing.T) {
		response := TemplateResponse(&structure.ContentVerdict{RiskScore: 0.3, RiskFactors: []string{"ignored"}})
		assert.Contains(t, response, "✅ **Low Risk**")
		assert.Contains(t, response, "**Risk Level:** 30% (Low)")
		assert.NotContains(t, response, "ignored")
	})
}

func TestBuildMessages_KeepsRecentHistory(t *testing.T) {
	history := make([]request.ChatMessage, 12)
	for i := range history {
		history[i] = request.ChatMessage{Role: "user", Content: fmt.Sprintf("message %d", i)}
	}

	messages := BuildMessages("is this true?", history)

	require.Len(t, messages, 12)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "message 2", messages[1].Content)
	assert.Equal(t, "message 11", messages[10].Content)
	assert.Equal(t, request.ChatMessage{Role: "user", Content: "is this true?"}, messages[11])
}

func TestBuildMessages_DropsUnknownRoles(t *testing.T) {
	history := []request.ChatMessage{
		{Role: "bot", Content: "hi"},
		{Content: "no role"},
		{Role: " Assistant ", Content: "hello"},
		{Role: "user", Content: "thanks"},
	}

	messages := BuildMessages("is this true?", history)

	assert.Equal(t, []request.ChatMessage{
		{Role: "system", Content: personaSystemPrompt},
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: "thanks"},
		{Role: "user", Content: "is this true?"},
	}, messages)
}

func TestResponder_Remote(t *testing.T) {
	completer := &fakeCompleter{reply: "Here is what I found."}
	responder := NewResponder(completer)

	response := responder.Respond(context.Background(), "is this true?", nil, fakeVerdict())

	assert.Equal(t, "Here is what I found.", response)
	assert.Equal(t, float32(0.7), completer.temperature)
	assert.Equal(t, 800, completer.maxTokens)
	require.Len(t, completer.messages, 2)
	assert.Contains(t, completer.messages[0].Content, "SATYAVADI")
}

func TestResponder_FallsBackToTemplate(t *testing.T) {
	tests := []struct {
		name      string
		completer *fakeCompleter
	}{
		{"error", &fakeCompleter{err: errors.New("rate limited")}},
		{"empty reply", &fakeCompleter{reply: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := NewResponder(tt.completer).Respond(context.Background(), "is this true?", nil, fakeVerdict())
			assert.Equal(t, TemplateResponse(fakeVerdict()), response)
		})
	}

	response := NewResponder(nil).Respond(context.Background(), "is this true?", nil, fakeVerdict())
	assert.Equal(t, TemplateResponse(fakeVerdict()), response)
}

func TestResponder_LogsFallbackReason(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	utils.SetLogger(zap.New(core), false)
	t.Cleanup(func() { utils.SetLogger(zap.NewNop(), false) })

	NewResponder(&fakeCompleter{reply: ""}).Respond(context.Background(), "is this true?", nil, fakeVerdict())
	NewResponder(&fakeCompleter{err: errors.New("rate limited")}).Respond(context.Background(), "is this true?", nil, fakeVerdict())

	entries := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "비어 있음")
	assert.NotContains(t, entries[0].Message, "<nil>")
	assert.Contains(t, entries[1].Message, "rate limited")
}
