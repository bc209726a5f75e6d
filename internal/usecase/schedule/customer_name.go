package schedule

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
)

// ======================================================
// NOME DO CLIENTE
// ======================================================

type CustomerName struct {
	ledger domain.Ledger
	logger *zap.Logger
}

func NewCustomerName(ledger domain.Ledger, logger *zap.Logger) *CustomerName {
	return &CustomerName{
		ledger: ledger,
		logger: logger,
	}
}

// Execute procura o nome registrado do cliente nas abas presencial e
// remota, nesta ordem, devolvendo o da linha mais recente. Vazio quando
// nenhuma aba conhece o cliente; só personaliza a saudação, nunca muda o
// contrato funcional.
func (uc *CustomerName) Execute(ctx context.Context, waID string) string {
	waID = strings.TrimSpace(waID)

	for _, ch := range []domain.Channel{domain.ChannelPresencial, domain.ChannelRemoto} {
		_, row, err := uc.ledger.FindLatestByCustomer(ctx, ch, waID, domain.StatusQualquer)
		if err != nil {
			if !errors.Is(err, domain.ErrRowNotFound) {
				uc.logger.Warn("falha ao buscar nome do cliente",
					zap.String("channel", string(ch)),
					zap.Error(err),
				)
			}
			continue
		}

		ap := domain.AppointmentFromRow(row)
		if name := strings.TrimSpace(ap.NomeCliente); name != "" {
			return name
		}
	}

	return ""
}
