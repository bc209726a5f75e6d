package schedule

import "time"

// ===============================
// Resultado das Operações
// ===============================

// OutcomeKind etiqueta o resultado de agendar/reagendar/cancelar.
type OutcomeKind string

const (
	OutcomeBooked           OutcomeKind = "agendado"
	OutcomeRescheduled      OutcomeKind = "reagendado"
	OutcomeCancelled        OutcomeKind = "cancelado"
	OutcomeInvalidDateTime  OutcomeKind = "data_hora_invalida"
	OutcomeSlotTaken        OutcomeKind = "horario_ocupado"
	OutcomeNotFound         OutcomeKind = "nao_encontrado"
	OutcomeTechnicalFailure OutcomeKind = "erro_tecnico"
)

// Outcome é o resultado etiquetado do serviço de agendamento. Nunca vira
// pânico nem erro cru para o orquestrador: toda falha chega aqui marcada.
// Text é o texto opaco entregue ao colaborador de raciocínio.
type Outcome struct {
	Kind    OutcomeKind
	Channel Channel
	When    time.Time

	// Cargas de recuperação para o chamador:
	Offending string   // texto de data/hora que não foi entendido
	FreeSlots []string // alternativas "HH:MM" quando o horário está ocupado

	Text string
}
