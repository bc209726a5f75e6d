package audit

import "go.uber.org/zap"

// Event registra uma operação de agendamento para a trilha de auditoria.
type Event struct {
	WAID    string
	Action  string
	Channel string
	Detail  string
}

type Dispatcher struct {
	logger *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.logger.Info("audit",
			zap.String("wa_id", ev.WAID),
			zap.String("action", ev.Action),
			zap.String("channel", ev.Channel),
			zap.String("detail", ev.Detail),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca travar o atendimento)
		d.logger.Warn("audit queue full, dropping event")
	}
}
