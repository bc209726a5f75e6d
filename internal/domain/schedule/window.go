package schedule

import "time"

// ===============================
// Janelas de Expediente
// ===============================

// WorkingWindow é uma janela de expediente dentro de um dia, expressa como
// deslocamento desde a meia-noite (ex: 09:00–12:00).
// Invariante: Start < End.
type WorkingWindow struct {
	Start time.Duration
	End   time.Duration
}

// Contains informa se o horário cai dentro da janela [Start, End).
func (w WorkingWindow) Contains(t time.Time) bool {
	tod := timeOfDay(t)
	return tod >= w.Start && tod < w.End
}

// Agenda é o conjunto ordenado e disjunto de janelas de expediente,
// mais a duração fixa compartilhada por todos os atendimentos presenciais.
type Agenda struct {
	Windows      []WorkingWindow
	SlotDuration time.Duration
}

// DefaultAgenda reflete o expediente padrão: 09h–12h e 14h–18h,
// atendimentos de 1 hora.
func DefaultAgenda() Agenda {
	return Agenda{
		Windows: []WorkingWindow{
			{Start: 9 * time.Hour, End: 12 * time.Hour},
			{Start: 14 * time.Hour, End: 18 * time.Hour},
		},
		SlotDuration: 60 * time.Minute,
	}
}

// InWorkingHours informa se o horário cai em alguma janela de expediente.
func (a Agenda) InWorkingHours(t time.Time) bool {
	for _, w := range a.Windows {
		if w.Contains(t) {
			return true
		}
	}
	return false
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}
