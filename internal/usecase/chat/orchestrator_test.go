package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/audit"
	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/chat"
	schedule "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
	ucschedule "github.com/Speakmu/whatsapp-bot-agendamento/internal/usecase/schedule"
)

// ------------------------------------------------------
// dublês de teste
// ------------------------------------------------------

type fakeReasoner struct {
	replies  []domain.Reply
	err      error
	requests []domain.Request
}

func (r *fakeReasoner) Complete(_ context.Context, req domain.Request) (domain.Reply, error) {
	r.requests = append(r.requests, req)
	if r.err != nil {
		return domain.Reply{}, r.err
	}
	reply := r.replies[0]
	r.replies = r.replies[1:]
	return reply, nil
}

type fakeStore struct {
	data    map[string][]domain.Message
	loadErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]domain.Message{}}
}

func (s *fakeStore) Load(_ context.Context, waID string) ([]domain.Message, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.data[waID], nil
}

func (s *fakeStore) Save(_ context.Context, waID string, msgs []domain.Message) error {
	s.data[waID] = msgs
	return nil
}

// memLedger é o mínimo de planilha em memória que os fluxos daqui exigem.
type memLedger struct {
	rows map[schedule.Channel][][]string
}

func newMemLedger() *memLedger {
	header := make([]string, schedule.NumCols)
	return &memLedger{rows: map[schedule.Channel][][]string{
		schedule.ChannelPresencial: {header},
		schedule.ChannelRemoto:     {header},
	}}
}

func (l *memLedger) ReadAll(_ context.Context, ch schedule.Channel) ([][]string, error) {
	return l.rows[ch], nil
}

func (l *memLedger) Append(_ context.Context, ch schedule.Channel, row []string) error {
	l.rows[ch] = append(l.rows[ch], row)
	return nil
}

func (l *memLedger) UpdateStatus(_ context.Context, ch schedule.Channel, rowIdx int, status schedule.Status) error {
	l.rows[ch][rowIdx][schedule.ColStatus] = string(status)
	return nil
}

func (l *memLedger) UpdateDateTime(_ context.Context, ch schedule.Channel, rowIdx int, value string) error {
	l.rows[ch][rowIdx][schedule.ColDataHora] = value
	return nil
}

func (l *memLedger) UpdateCancelReason(_ context.Context, ch schedule.Channel, rowIdx int, reason string) error {
	l.rows[ch][rowIdx][schedule.ColMotivoCancelamento] = reason
	return nil
}

func (l *memLedger) FindLatestByCustomer(_ context.Context, ch schedule.Channel, waID string, status schedule.Status) (int, []string, error) {
	return schedule.ScanLatestByCustomer(l.rows[ch], waID, status)
}

func newOrchestrator(reasoner *fakeReasoner, store *fakeStore, ledger *memLedger) *Orchestrator {
	logger := zap.NewNop()
	avail := ucschedule.NewAvailability(ledger, schedule.DefaultAgenda(), logger)
	dispatcher := audit.NewDispatcher(logger)
	return NewOrchestrator(
		reasoner,
		store,
		ucschedule.NewCustomerName(ledger, logger),
		ucschedule.NewBook(ledger, avail, dispatcher, logger),
		ucschedule.NewReschedule(ledger, avail, dispatcher, logger),
		ucschedule.NewCancel(ledger, dispatcher, logger),
		logger,
	)
}

// ------------------------------------------------------
// casos
// ------------------------------------------------------

func TestHandleTurn_RespostaDireta(t *testing.T) {
	reasoner := &fakeReasoner{replies: []domain.Reply{{Content: "Olá! Para qual cidade você gostaria do atendimento?"}}}
	store := newFakeStore()
	o := newOrchestrator(reasoner, store, newMemLedger())

	got := o.HandleTurn(context.Background(), "111", "oi")
	if got != "Olá! Para qual cidade você gostaria do atendimento?" {
		t.Fatalf("resposta errada: %q", got)
	}

	if len(reasoner.requests) != 1 {
		t.Fatalf("esperada 1 chamada ao colaborador, veio %d", len(reasoner.requests))
	}
	if len(reasoner.requests[0].Tools) == 0 {
		t.Fatal("a primeira chamada sempre leva o catálogo de ferramentas")
	}

	hist := store.data["111"]
	if len(hist) != 2 || hist[0].Role != domain.RoleUser || hist[1].Role != domain.RoleAssistant {
		t.Fatalf("histórico persistido errado: %+v", hist)
	}
}

func TestHandleTurn_AgendamentoRemotoViaFerramenta(t *testing.T) {
	args := `{"tipo_cliente":"Casa","nome_cliente":"João","servico":"Computador lento","data_hora":"Fila","telefone":"35911112222","endereco":"Remoto","cidade_atendimento":"Belo Horizonte"}`
	reasoner := &fakeReasoner{replies: []domain.Reply{
		{ToolCall: &domain.ToolCall{ID: "call_1", Name: ToolAgendar, Arguments: args}},
		{Content: "Pronto, João! Você entrou na fila do atendimento remoto."},
	}}
	store := newFakeStore()
	ledger := newMemLedger()
	o := newOrchestrator(reasoner, store, ledger)

	got := o.HandleTurn(context.Background(), "5531888888888", "pode confirmar")
	if !strings.Contains(got, "fila do atendimento remoto") {
		t.Fatalf("resposta final errada: %q", got)
	}

	if len(ledger.rows[schedule.ChannelRemoto]) != 2 {
		t.Fatal("o agendamento remoto deveria ter sido gravado")
	}
	ap := schedule.AppointmentFromRow(ledger.rows[schedule.ChannelRemoto][1])
	if ap.WAID != "5531888888888" {
		t.Fatalf("wa_id do remetente deve prevalecer, veio %q", ap.WAID)
	}
	if ap.DataHora != schedule.QueueSentinel {
		t.Fatalf("remoto deve entrar na fila, veio %q", ap.DataHora)
	}

	if len(reasoner.requests) != 2 {
		t.Fatalf("esperadas 2 chamadas ao colaborador, veio %d", len(reasoner.requests))
	}
	second := reasoner.requests[1]
	if len(second.Tools) != 0 {
		t.Fatal("a chamada final não leva ferramentas")
	}
	last := second.Turns[len(second.Turns)-1]
	if last.Role != domain.RoleTool || !strings.Contains(last.Content, "AGENDAMENTO_SUCESSO_ABA_REMOTO") {
		t.Fatalf("resultado da ferramenta não chegou ao colaborador: %+v", last)
	}
}

func TestHandleTurn_CancelamentoViaFerramenta(t *testing.T) {
	ledger := newMemLedger()
	ledger.Append(context.Background(), schedule.ChannelPresencial, schedule.Appointment{
		WAID:     "111",
		DataHora: "15/01/2026 09:00",
		Status:   schedule.StatusPendente,
	}.Values())

	reasoner := &fakeReasoner{replies: []domain.Reply{
		{ToolCall: &domain.ToolCall{ID: "call_1", Name: ToolReagendar, Arguments: `{"acao":"cancelar","motivo_cancelamento":"viajarei"}`}},
		{Content: "Cancelado! Qualquer coisa é só chamar."},
	}}
	o := newOrchestrator(reasoner, newFakeStore(), ledger)

	o.HandleTurn(context.Background(), "111", "quero cancelar, vou viajar")

	ap := schedule.AppointmentFromRow(ledger.rows[schedule.ChannelPresencial][1])
	if ap.Status != schedule.StatusCancelado {
		t.Fatalf("agendamento não foi cancelado: %q", ap.Status)
	}
	if ap.MotivoCancelamento != "viajarei" {
		t.Fatalf("motivo não registrado: %q", ap.MotivoCancelamento)
	}
}

func TestHandleTurn_AcaoInvalidaNaFerramenta(t *testing.T) {
	reasoner := &fakeReasoner{replies: []domain.Reply{
		{ToolCall: &domain.ToolCall{ID: "call_1", Name: ToolReagendar, Arguments: `{"acao":"reagendar"}`}},
		{Content: "Preciso da nova data para reagendar."},
	}}
	o := newOrchestrator(reasoner, newFakeStore(), newMemLedger())

	o.HandleTurn(context.Background(), "111", "quero mudar")

	last := reasoner.requests[1].Turns[len(reasoner.requests[1].Turns)-1]
	if last.Content != "Ação inválida ou dados incompletos." {
		t.Fatalf("resultado da ferramenta errado: %q", last.Content)
	}
}

func TestHandleTurn_FerramentaDesconhecida(t *testing.T) {
	reasoner := &fakeReasoner{replies: []domain.Reply{
		{ToolCall: &domain.ToolCall{ID: "call_1", Name: "apagar_planilha", Arguments: `{}`}},
		{Content: "Desculpe, não consigo fazer isso."},
	}}
	o := newOrchestrator(reasoner, newFakeStore(), newMemLedger())

	o.HandleTurn(context.Background(), "111", "apaga tudo aí")

	last := reasoner.requests[1].Turns[len(reasoner.requests[1].Turns)-1]
	if !strings.Contains(last.Content, "operação desconhecida") {
		t.Fatalf("nome desconhecido deve virar falha técnica: %q", last.Content)
	}
}

func TestHandleTurn_ArgumentosMalformados(t *testing.T) {
	reasoner := &fakeReasoner{replies: []domain.Reply{
		{ToolCall: &domain.ToolCall{ID: "call_1", Name: ToolAgendar, Arguments: `{não é json`}},
		{Content: "Tive um problema, pode repetir os dados?"},
	}}
	ledger := newMemLedger()
	o := newOrchestrator(reasoner, newFakeStore(), ledger)

	o.HandleTurn(context.Background(), "111", "confirma aí")

	last := reasoner.requests[1].Turns[len(reasoner.requests[1].Turns)-1]
	if !strings.Contains(last.Content, "argumentos inválidos") {
		t.Fatalf("argumentos malformados devem virar falha técnica: %q", last.Content)
	}
	if len(ledger.rows[schedule.ChannelPresencial]) != 1 || len(ledger.rows[schedule.ChannelRemoto]) != 1 {
		t.Fatal("nada deve ser gravado com argumentos malformados")
	}
}

func TestHandleTurn_FalhaDoColaborador(t *testing.T) {
	reasoner := &fakeReasoner{err: errors.New("api fora do ar")}
	store := newFakeStore()
	o := newOrchestrator(reasoner, store, newMemLedger())

	got := o.HandleTurn(context.Background(), "111", "oi")
	if got != apologyMessage {
		t.Fatalf("esperada a resposta substituta, veio %q", got)
	}

	hist := store.data["111"]
	if len(hist) != 2 || hist[1].Content != apologyMessage {
		t.Fatalf("a desculpa também deve ser persistida: %+v", hist)
	}
}

func TestHandleTurn_TruncaHistorico(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < domain.MaxHistoryEntries; i++ {
		store.data["111"] = append(store.data["111"], domain.Message{Role: domain.RoleUser, Content: "antiga"})
	}

	reasoner := &fakeReasoner{replies: []domain.Reply{{Content: "certo!"}}}
	o := newOrchestrator(reasoner, store, newMemLedger())

	o.HandleTurn(context.Background(), "111", "nova mensagem")

	hist := store.data["111"]
	if len(hist) != domain.MaxHistoryEntries {
		t.Fatalf("histórico deve ficar em %d entradas, veio %d", domain.MaxHistoryEntries, len(hist))
	}
	if hist[len(hist)-1].Content != "certo!" {
		t.Fatalf("última entrada deve ser a resposta: %q", hist[len(hist)-1].Content)
	}
}

func TestHandleTurn_FalhaDeLeituraDoHistoricoNaoBloqueia(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("arquivo corrompido")

	reasoner := &fakeReasoner{replies: []domain.Reply{{Content: "Olá!"}}}
	o := newOrchestrator(reasoner, store, newMemLedger())

	if got := o.HandleTurn(context.Background(), "111", "oi"); got != "Olá!" {
		t.Fatalf("turno deve seguir sem histórico, veio %q", got)
	}
}

func TestSystemPromptSaudacaoPersonalizada(t *testing.T) {
	if got := SystemPrompt("Maria"); !strings.Contains(got, "Bem-vindo de volta, Maria!") {
		t.Fatal("cliente conhecido deve gerar saudação personalizada")
	}
	if got := SystemPrompt(""); strings.Contains(got, "Bem-vindo de volta") {
		t.Fatal("cliente novo não leva saudação personalizada")
	}
}

func TestToolCatalog(t *testing.T) {
	tools := ToolCatalog()
	if len(tools) != 2 {
		t.Fatalf("esperadas 2 ferramentas, veio %d", len(tools))
	}
	if tools[0].Name != ToolAgendar || tools[1].Name != ToolReagendar {
		t.Fatalf("nomes errados: %s, %s", tools[0].Name, tools[1].Name)
	}
	for _, tool := range tools {
		if tool.Parameters["type"] != "object" {
			t.Fatalf("%s: parâmetros devem ser um objeto JSON-Schema", tool.Name)
		}
	}
}
