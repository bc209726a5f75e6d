package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/dto"
)

// ======================================================
// ENVIO DE MENSAGENS (Graph API)
// ======================================================

const defaultBaseURL = "https://graph.facebook.com/v17.0"

type CloudSender struct {
	accessToken   string
	phoneNumberID string
	baseURL       string
	client        *http.Client
	logger        *zap.Logger
}

func NewCloudSender(accessToken, phoneNumberID string, logger *zap.Logger) *CloudSender {
	return &CloudSender{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		baseURL:       defaultBaseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Send entrega uma mensagem de texto ao cliente via WhatsApp Cloud.
func (s *CloudSender) Send(ctx context.Context, to, body string) error {
	payload := dto.OutboundMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             dto.OutboundText{Body: body},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: serializando mensagem: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.baseURL, s.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("whatsapp: criando requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: enviando mensagem: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("whatsapp: envio falhou com status %d", resp.StatusCode)
	}

	s.logger.Debug("mensagem enviada",
		zap.String("to", to),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}
