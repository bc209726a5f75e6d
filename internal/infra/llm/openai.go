package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/chat"
)

// ======================================================
// OPENAI
// ======================================================

const defaultModel = "gpt-4.1-mini"

// OpenAIReasoner implementa a porta do colaborador de raciocínio sobre a
// API de chat completions da OpenAI, com o catálogo de ferramentas
// traduzido para o formato de function calling.
type OpenAIReasoner struct {
	client *openai.Client
	model  string
}

func NewOpenAIReasoner(apiKey, model string) *OpenAIReasoner {
	if model == "" {
		model = defaultModel
	}
	return &OpenAIReasoner{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (r *OpenAIReasoner) Complete(ctx context.Context, req domain.Request) (domain.Reply, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Turns)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: req.System,
	})

	for _, t := range req.Turns {
		switch {
		case t.ToolCall != nil:
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role: openai.ChatMessageRoleAssistant,
				ToolCalls: []openai.ToolCall{{
					ID:   t.ToolCall.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      t.ToolCall.Name,
						Arguments: t.ToolCall.Arguments,
					},
				}},
			})
		case t.ToolID != "":
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    t.Content,
				Name:       t.ToolName,
				ToolCallID: t.ToolID,
			})
		default:
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:    t.Role,
				Content: t.Content,
			})
		}
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    r.model,
		Messages: msgs,
	}

	for _, tool := range req.Tools {
		chatReq.Tools = append(chatReq.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	resp, err := r.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.Reply{}, errors.New("openai: resposta sem escolhas")
	}

	msg := resp.Choices[0].Message
	reply := domain.Reply{Content: msg.Content}

	if len(msg.ToolCalls) > 0 {
		// o contrato admite exatamente uma chamada por turno
		tc := msg.ToolCalls[0]
		reply.ToolCall = &domain.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		}
	}

	return reply, nil
}
