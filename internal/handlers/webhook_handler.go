package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/dto"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/httperr"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// Conversation processa um turno de conversa e devolve a resposta.
type Conversation interface {
	HandleTurn(ctx context.Context, waID, text string) string
}

// Sender entrega a resposta ao cliente pelo transporte de saída.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

type WebhookHandler struct {
	conv        Conversation
	sender      Sender
	verifyToken string
	logger      *zap.Logger
}

func NewWebhookHandler(
	conv Conversation,
	sender Sender,
	verifyToken string,
	logger *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		conv:        conv,
		sender:      sender,
		verifyToken: verifyToken,
		logger:      logger,
	}
}

////////////////////////////////////////////////////////
// VERIFICAÇÃO (GET)
////////////////////////////////////////////////////////

func (h *WebhookHandler) Verify(c *gin.Context) {
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if h.verifyToken != "" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}

	httperr.Forbidden(c, "invalid_token", "Token inválido.")
}

////////////////////////////////////////////////////////
// RECEBIMENTO (POST)
////////////////////////////////////////////////////////

func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload dto.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Payload inválido.")
		return
	}

	ctx := c.Request.Context()

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Text == nil || strings.TrimSpace(msg.Text.Body) == "" {
					continue
				}

				reply := h.conv.HandleTurn(ctx, msg.From, msg.Text.Body)

				if err := h.sender.Send(ctx, msg.From, reply); err != nil {
					h.logger.Error("falha ao enviar resposta",
						zap.String("wa_id", msg.From),
						zap.Error(err),
					)
				}
			}
		}
	}

	c.String(http.StatusOK, "EVENT_RECEIVED")
}
