package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/audit"
	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/timezone"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	WAID              string
	TipoCliente       string
	NomeCliente       string
	Servico           string
	DataHora          string
	Telefone          string
	Endereco          string
	CidadeAtendimento string
	ModeloEquipamento string
	Observacao        string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	ledger domain.Ledger
	avail  *Availability
	audit  *audit.Dispatcher
	logger *zap.Logger
	now    func() time.Time
}

func NewBook(
	ledger domain.Ledger,
	avail *Availability,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *Book {
	return &Book{
		ledger: ledger,
		avail:  avail,
		audit:  audit,
		logger: logger,
		now:    timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(ctx context.Context, in BookInput) domain.Outcome {
	waID := strings.TrimSpace(in.WAID)

	// --------------------------------------------------
	// 1️⃣ Cidade ausente: deduz pelo texto de data/hora
	//    (proteção anti-travamento do fluxo)
	// --------------------------------------------------
	city := strings.TrimSpace(in.CidadeAtendimento)
	if city == "" {
		if strings.Contains(in.DataHora, ":") && !strings.Contains(strings.ToLower(in.DataHora), "fila") {
			city = "São Sebastião do Paraíso"
		} else {
			city = "Remoto"
		}
	}

	// --------------------------------------------------
	// 2️⃣ Roteamento por cidade (ignora caixa e acentos)
	// --------------------------------------------------
	ch := domain.ClassifyDestination(city)

	endereco := in.Endereco
	var dataHora string
	var when time.Time

	// --------------------------------------------------
	// 3️⃣ Data/hora
	// --------------------------------------------------
	if ch == domain.ChannelRemoto {
		// remoto entra na fila, sem horário; a cidade vira o endereço
		dataHora = domain.QueueSentinel
		endereco = city
	} else {
		var err error
		when, err = domain.ResolveDateTime(in.DataHora, uc.now())
		if err != nil {
			return domain.Outcome{
				Kind:      domain.OutcomeInvalidDateTime,
				Channel:   ch,
				Offending: in.DataHora,
				Text: fmt.Sprintf(
					"ERRO_DATA_HORA: Para atendimento presencial em %s, preciso de data e hora exatas. Não entendi: '%s'",
					city, in.DataHora,
				),
			}
		}

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

		dataHora = when.Format(domain.SheetTimeFormat)
	}

	// --------------------------------------------------
	// 4️⃣ Gravação (campos vazios nunca vão em branco)
	// --------------------------------------------------
	ap := domain.Appointment{
		WAID:              waID,
		TipoCliente:       defaultIfBlank(in.TipoCliente, "N/I"),
		NomeCliente:       defaultIfBlank(in.NomeCliente, "N/I"),
		Servico:           defaultIfBlank(in.Servico, "Não Informado"),
		DataHora:          dataHora,
		Telefone:          defaultIfBlank(validators.SanitizePhone(in.Telefone), "N/I"),
		Endereco:          defaultIfBlank(endereco, "N/I"),
		ModeloEquipamento: defaultIfBlank(in.ModeloEquipamento, "Não Informado"),
		Observacao:        defaultIfBlank(in.Observacao, "Nenhuma"),
		Status:            domain.StatusPendente,
	}

	if err := uc.ledger.Append(ctx, ch, ap.Values()); err != nil {
		uc.logger.Error("falha ao gravar agendamento na planilha",
			zap.String("wa_id", waID),
			zap.String("channel", string(ch)),
			zap.Error(err),
		)
		return domain.Outcome{
			Kind:    domain.OutcomeTechnicalFailure,
			Channel: ch,
			Text:    "ERRO_TECNICO: Falha ao salvar na planilha.",
		}
	}

	uc.audit.Dispatch(audit.Event{
		WAID:    waID,
		Action:  "agendamento_criado",
		Channel: string(ch),
		Detail:  dataHora,
	})

	// --------------------------------------------------
	// 5️⃣ Confirmação etiquetada por canal
	// --------------------------------------------------
	if ch == domain.ChannelRemoto {
		return domain.Outcome{
			Kind:    domain.OutcomeBooked,
			Channel: ch,
			Text:    "AGENDAMENTO_SUCESSO_ABA_REMOTO. Atendimento remoto registrado na fila.",
		}
	}

	return domain.Outcome{
		Kind:    domain.OutcomeBooked,
		Channel: ch,
		When:    when,
		Text:    fmt.Sprintf("AGENDAMENTO_SUCESSO_ABA_PRESENCIAL. Agendamento presencial confirmado para %s.", dataHora),
	}
}

func defaultIfBlank(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
