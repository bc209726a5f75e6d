package schedule

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/audit"
	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
)

// ======================================================
// CANCELAMENTO
// ======================================================

type Cancel struct {
	ledger domain.Ledger
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewCancel(
	ledger domain.Ledger,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *Cancel {
	return &Cancel{
		ledger: ledger,
		audit:  audit,
		logger: logger,
	}
}

// Execute cancela o agendamento presencial pendente mais recente do
// cliente. Linhas não são apagadas, só transicionam de status; as linhas
// anteriores do mesmo cliente ficam intactas.
func (uc *Cancel) Execute(ctx context.Context, waID, motivo string) domain.Outcome {
	waID = strings.TrimSpace(waID)
	ch := domain.ChannelPresencial

	rowIdx, _, err := uc.ledger.FindLatestByCustomer(ctx, ch, waID, domain.StatusPendente)
	if errors.Is(err, domain.ErrRowNotFound) {
		return domain.Outcome{
			Kind:    domain.OutcomeNotFound,
			Channel: ch,
			Text:    msgSemAgendamentoPresencial,
		}
	}
	if err != nil {
		uc.logger.Error("falha ao localizar agendamento para cancelar",
			zap.String("wa_id", waID),
			zap.Error(err),
		)
		return technicalFailure(ch, "Falha ao processar cancelamento.")
	}

	if err := uc.ledger.UpdateStatus(ctx, ch, rowIdx, domain.StatusCancelado); err != nil {
		uc.logger.Error("falha ao cancelar agendamento", zap.Error(err))
		return technicalFailure(ch, "Falha ao processar cancelamento.")
	}

	motivoFinal := motivo
	if strings.TrimSpace(motivoFinal) == "" {
		motivoFinal = "Não Informado"
	}
	if err := uc.ledger.UpdateCancelReason(ctx, ch, rowIdx, motivoFinal); err != nil {
		// escrita de melhor esforço: o status já é autoritativo
		uc.logger.Warn("falha ao registrar motivo do cancelamento",
			zap.String("wa_id", waID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		WAID:    waID,
		Action:  "agendamento_cancelado",
		Channel: string(ch),
		Detail:  motivoFinal,
	})

	return domain.Outcome{
		Kind:    domain.OutcomeCancelled,
		Channel: ch,
		Text:    "Seu agendamento presencial foi cancelado com sucesso.",
	}
}
