package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
)

// ======================================================
// DISPONIBILIDADE
// ======================================================

type Availability struct {
	ledger domain.Ledger
	agenda domain.Agenda
	logger *zap.Logger
}

func NewAvailability(
	ledger domain.Ledger,
	agenda domain.Agenda,
	logger *zap.Logger,
) *Availability {
	return &Availability{
		ledger: ledger,
		agenda: agenda,
		logger: logger,
	}
}

// IsFree informa se o horário candidato está livre. Atendimento remoto
// entra em fila e nunca disputa horário. Para o presencial, a planilha
// inteira é relida a cada chamada: nenhuma decisão usa estado em cache.
// Qualquer falha de leitura reporta indisponível, nunca o contrário —
// o risco a evitar é o agendamento duplo.
func (a *Availability) IsFree(ctx context.Context, when time.Time, ch domain.Channel) bool {
	if ch == domain.ChannelRemoto {
		return true
	}

	if !a.agenda.InWorkingHours(when) {
		return false
	}

	rows, err := a.ledger.ReadAll(ctx, ch)
	if err != nil {
		a.logger.Warn("falha ao ler a planilha na checagem de disponibilidade", zap.Error(err))
		return false
	}

	candidateEnd := when.Add(a.agenda.SlotDuration)

	for i, row := range rows {
		if i == 0 {
			// cabeçalho
			continue
		}
		if len(row) <= domain.ColStatus {
			continue
		}
		if domain.ParseStatus(row[domain.ColStatus]) != domain.StatusPendente {
			continue
		}

		existing, err := time.ParseInLocation(domain.SheetTimeFormat, row[domain.ColDataHora], when.Location())
		if err != nil {
			// célula ilegível não bloqueia a agenda
			continue
		}
		existingEnd := existing.Add(a.agenda.SlotDuration)

		// intervalos semiabertos: toque exato de borda não é conflito
		if !candidateEnd.After(existing) {
			continue
		}
		if !when.Before(existingEnd) {
			continue
		}

		return false
	}

	return true
}

// FreeSlots enumera os inícios de slot livres ("HH:MM") para a data,
// janela a janela, sem deixar nenhum slot estourar o fim do expediente.
// A sequência é recalculada do zero a cada chamada; vazia significa
// nenhum horário disponível.
func (a *Availability) FreeSlots(ctx context.Context, date time.Time, ch domain.Channel) []string {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var free []string
	for _, w := range a.agenda.Windows {
		windowEnd := dayStart.Add(w.End)
		for cur := dayStart.Add(w.Start); !cur.Add(a.agenda.SlotDuration).After(windowEnd); cur = cur.Add(a.agenda.SlotDuration) {
			if a.IsFree(ctx, cur, ch) {
				free = append(free, cur.Format("15:04"))
			}
		}
	}

	return free
}

var weekdaysPT = [...]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

// RenderFreeSlots monta a mensagem de alternativas apresentada ao cliente.
func RenderFreeSlots(date time.Time, slots []string) string {
	if len(slots) == 0 {
		return "Nenhum horário disponível para esta data."
	}

	return fmt.Sprintf(
		"Os horários disponíveis para %s, %s são: %s.",
		weekdaysPT[date.Weekday()],
		date.Format("02/01"),
		strings.Join(slots, ", "),
	)
}
