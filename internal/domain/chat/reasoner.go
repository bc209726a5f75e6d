package chat

import "context"

// ===============================
// Porta do Colaborador de Raciocínio
// ===============================

// ToolCall é a invocação de operação pedida pelo colaborador.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON bruto, decodificado por quem despacha
}

// Turn é uma entrada da requisição: fala do usuário/assistente, pedido de
// chamada de ferramenta ou resultado de ferramenta.
type Turn struct {
	Role     string
	Content  string
	ToolCall *ToolCall // turno do assistente pedindo a chamada
	ToolID   string    // preenchidos no turno com o resultado
	ToolName string
}

// ToolSpec declara uma operação chamável no catálogo, com o esquema JSON
// dos seus parâmetros.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Request leva as instruções de sistema, o histórico truncado e o catálogo.
type Request struct {
	System string
	Turns  []Turn
	Tools  []ToolSpec
}

// Reply é texto livre ou exatamente uma chamada de ferramenta por turno.
type Reply struct {
	Content  string
	ToolCall *ToolCall
}

// Reasoner é a porta para o serviço externo de raciocínio. Chamada
// síncrona, sem retry interno; o chamador decide a política de repetição.
type Reasoner interface {
	Complete(ctx context.Context, req Request) (Reply, error)
}
