package chat

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/chat"
	ucschedule "github.com/Speakmu/whatsapp-bot-agendamento/internal/usecase/schedule"
)

// Resposta substituta quando o colaborador de raciocínio falha; também é
// persistida para o próximo turno manter continuidade.
const apologyMessage = "Desculpe, houve um problema técnico. Tente novamente."

// ======================================================
// ORQUESTRADOR DE CONVERSA
// ======================================================

type Orchestrator struct {
	reasoner domain.Reasoner
	store    domain.Store
	names    *ucschedule.CustomerName
	book     *ucschedule.Book
	resched  *ucschedule.Reschedule
	cancel   *ucschedule.Cancel
	logger   *zap.Logger
}

func NewOrchestrator(
	reasoner domain.Reasoner,
	store domain.Store,
	names *ucschedule.CustomerName,
	book *ucschedule.Book,
	resched *ucschedule.Reschedule,
	cancel *ucschedule.Cancel,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		reasoner: reasoner,
		store:    store,
		names:    names,
		book:     book,
		resched:  resched,
		cancel:   cancel,
		logger:   logger,
	}
}

// HandleTurn processa uma mensagem recebida de um cliente e devolve o
// texto de resposta. Um turno por vez por cliente; a serialização entre
// turnos concorrentes do mesmo cliente é responsabilidade do transporte.
func (o *Orchestrator) HandleTurn(ctx context.Context, waID, text string) string {
	history, err := o.store.Load(ctx, waID)
	if err != nil {
		o.logger.Warn("falha ao carregar histórico",
			zap.String("wa_id", waID),
			zap.Error(err),
		)
		history = nil
	}

	history = domain.Truncate(append(history, domain.Message{Role: domain.RoleUser, Content: text}))
	o.persist(ctx, waID, history)

	reply, err := o.converse(ctx, waID, history)
	if err != nil {
		o.logger.Error("falha na conversa com o colaborador de raciocínio",
			zap.String("wa_id", waID),
			zap.Error(err),
		)
		reply = apologyMessage
	}

	history = domain.Truncate(append(history, domain.Message{Role: domain.RoleAssistant, Content: reply}))
	o.persist(ctx, waID, history)

	return reply
}

// converse faz a primeira chamada com o catálogo de ferramentas e, quando
// o colaborador pede exatamente uma chamada, despacha e volta com o
// resultado para obter o texto final.
func (o *Orchestrator) converse(ctx context.Context, waID string, history []domain.Message) (string, error) {
	system := SystemPrompt(o.names.Execute(ctx, waID))

	turns := make([]domain.Turn, 0, len(history)+2)
	for _, m := range history {
		turns = append(turns, domain.Turn{Role: m.Role, Content: m.Content})
	}

	reply, err := o.reasoner.Complete(ctx, domain.Request{
		System: system,
		Turns:  turns,
		Tools:  ToolCatalog(),
	})
	if err != nil {
		return "", err
	}

	if reply.ToolCall == nil {
		return reply.Content, nil
	}

	result := o.dispatch(ctx, waID, reply.ToolCall)

	turns = append(turns,
		domain.Turn{Role: domain.RoleAssistant, ToolCall: reply.ToolCall},
		domain.Turn{
			Role:     domain.RoleTool,
			Content:  result,
			ToolID:   reply.ToolCall.ID,
			ToolName: reply.ToolCall.Name,
		},
	)

	final, err := o.reasoner.Complete(ctx, domain.Request{System: system, Turns: turns})
	if err != nil {
		return "", err
	}
	return final.Content, nil
}

type bookArgs struct {
	TipoCliente       string `json:"tipo_cliente"`
	NomeCliente       string `json:"nome_cliente"`
	Servico           string `json:"servico"`
	DataHora          string `json:"data_hora"`
	Telefone          string `json:"telefone"`
	Endereco          string `json:"endereco"`
	CidadeAtendimento string `json:"cidade_atendimento"`
	ModeloEquipamento string `json:"modelo_equipamento"`
	Observacao        string `json:"observacao"`
}

type rescheduleArgs struct {
	Acao               string `json:"acao"`
	NovaDataHora       string `json:"nova_data_hora"`
	MotivoCancelamento string `json:"motivo_cancelamento"`
}

// dispatch é a união fechada das operações suportadas: nomes desconhecidos
// e argumentos malformados viram falha técnica devolvida ao colaborador,
// nunca pânico.
func (o *Orchestrator) dispatch(ctx context.Context, waID string, call *domain.ToolCall) string {
	switch call.Name {
	case ToolAgendar:
		var args bookArgs
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			o.logger.Warn("argumentos inválidos para agendar_atendimento", zap.Error(err))
			return "ERRO_TECNICO: argumentos inválidos para agendar_atendimento."
		}

		out := o.book.Execute(ctx, ucschedule.BookInput{
			WAID:              waID,
			TipoCliente:       args.TipoCliente,
			NomeCliente:       args.NomeCliente,
			Servico:           args.Servico,
			DataHora:          args.DataHora,
			Telefone:          args.Telefone,
			Endereco:          args.Endereco,
			CidadeAtendimento: args.CidadeAtendimento,
			ModeloEquipamento: args.ModeloEquipamento,
			Observacao:        args.Observacao,
		})
		return out.Text

	case ToolReagendar:
		var args rescheduleArgs
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			o.logger.Warn("argumentos inválidos para reagendar_atendimento", zap.Error(err))
			return "ERRO_TECNICO: argumentos inválidos para reagendar_atendimento."
		}

		switch args.Acao {
		case "cancelar":
			return o.cancel.Execute(ctx, waID, args.MotivoCancelamento).Text
		case "reagendar":
			if args.NovaDataHora == "" {
				return "Ação inválida ou dados incompletos."
			}
			return o.resched.Execute(ctx, waID, args.NovaDataHora).Text
		default:
			return "Ação inválida ou dados incompletos."
		}

	default:
		o.logger.Warn("operação desconhecida pedida pelo colaborador",
			zap.String("tool", call.Name),
		)
		return "ERRO_TECNICO: operação desconhecida: " + call.Name
	}
}

func (o *Orchestrator) persist(ctx context.Context, waID string, history []domain.Message) {
	if err := o.store.Save(ctx, waID, history); err != nil {
		o.logger.Error("falha ao salvar histórico",
			zap.String("wa_id", waID),
			zap.Error(err),
		)
	}
}
