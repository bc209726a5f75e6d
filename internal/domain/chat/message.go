package chat

import "context"

// ===============================
// Histórico de Conversa
// ===============================

// MaxHistoryEntries limita o contexto a 5 pares usuário/assistente.
const MaxHistoryEntries = 10

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message é uma entrada persistida do histórico de um cliente.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Truncate corta o histórico pela frente, preservando a ordem relativa
// das entradas mais recentes.
func Truncate(msgs []Message) []Message {
	if len(msgs) <= MaxHistoryEntries {
		return msgs
	}
	return msgs[len(msgs)-MaxHistoryEntries:]
}

// Store é a porta do armazenamento de histórico, chaveado por cliente.
// O valor é reescrito por inteiro a cada mutação; turnos concorrentes do
// mesmo cliente precisam ser serializados pelo chamador.
type Store interface {
	Load(ctx context.Context, waID string) ([]Message, error)
	Save(ctx context.Context, waID string, msgs []Message) error
}
