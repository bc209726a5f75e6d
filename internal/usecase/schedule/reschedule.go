package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/audit"
	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/timezone"
)

// Mensagem para quem não tem agendamento presencial pendente: a fila
// remota não é reagendável pelo bot, só pelo suporte humano.
const msgSemAgendamentoPresencial = "Não encontrei nenhum agendamento PRESENCIAL pendente para reagendar. " +
	"Se você está na fila de espera do atendimento Remoto e deseja cancelar, " +
	"por favor entre em contato com o suporte humano."

// ======================================================
// REAGENDAMENTO
// ======================================================

type Reschedule struct {
	ledger domain.Ledger
	avail  *Availability
	audit  *audit.Dispatcher
	logger *zap.Logger
	now    func() time.Time
}

func NewReschedule(
	ledger domain.Ledger,
	avail *Availability,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *Reschedule {
	return &Reschedule{
		ledger: ledger,
		avail:  avail,
		audit:  audit,
		logger: logger,
		now:    timezone.Now,
	}
}

// Execute move o agendamento presencial pendente mais recente do cliente
// para a nova data/hora. Só a aba presencial tem horário marcado para mover.
func (uc *Reschedule) Execute(ctx context.Context, waID, novaDataHora string) domain.Outcome {
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
		uc.logger.Error("falha ao localizar agendamento para reagendar",
			zap.String("wa_id", waID),
			zap.Error(err),
		)
		return technicalFailure(ch, "Falha ao processar reagendamento.")
	}

	when, err := domain.ResolveDateTime(novaDataHora, uc.now())
	if err != nil {
		return domain.Outcome{
			Kind:      domain.OutcomeInvalidDateTime,
			Channel:   ch,
			Offending: novaDataHora,
			Text:      fmt.Sprintf("ERRO_DATA_HORA: Data inválida. Detalhe: %v", err),
		}
	}

	// A checagem varre todas as linhas pendentes, inclusive a que está
	// sendo movida: manter o horário atual conta como conflito.
	if !uc.avail.IsFree(ctx, when, ch) {
		slots := uc.avail.FreeSlots(ctx, when, ch)
		return domain.Outcome{
			Kind:      domain.OutcomeSlotTaken,
			Channel:   ch,
			When:      when,
			FreeSlots: slots,
			Text:      "HORARIO_OCUPADO. " + RenderFreeSlots(when, slots),
		}
	}

	formatted := when.Format(domain.SheetTimeFormat)

	if err := uc.ledger.UpdateDateTime(ctx, ch, rowIdx, formatted); err != nil {
		uc.logger.Error("falha ao atualizar data do agendamento", zap.Error(err))
		return technicalFailure(ch, "Falha ao processar reagendamento.")
	}
	if err := uc.ledger.UpdateStatus(ctx, ch, rowIdx, domain.StatusPendente); err != nil {
		uc.logger.Error("falha ao atualizar status do agendamento", zap.Error(err))
		return technicalFailure(ch, "Falha ao processar reagendamento.")
	}

	uc.audit.Dispatch(audit.Event{
		WAID:    waID,
		Action:  "agendamento_reagendado",
		Channel: string(ch),
		Detail:  formatted,
	})

	return domain.Outcome{
		Kind:    domain.OutcomeRescheduled,
		Channel: ch,
		When:    when,
		Text:    fmt.Sprintf("Seu agendamento presencial foi reagendado com sucesso para: %s.", formatted),
	}
}

func technicalFailure(ch domain.Channel, detail string) domain.Outcome {
	return domain.Outcome{
		Kind:    domain.OutcomeTechnicalFailure,
		Channel: ch,
		Text:    "ERRO_TECNICO: " + detail,
	}
}
