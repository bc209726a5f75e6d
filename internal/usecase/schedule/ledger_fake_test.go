package schedule

import (
	"context"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
)

var sheetHeader = []string{
	"wa_id", "tipo_cliente", "nome_cliente", "servico", "data_hora",
	"telefone", "endereco", "modelo_equipamento", "observacao", "status", "motivo_cancelamento",
}

// fakeLedger guarda as partições em memória, com a linha 0 de cabeçalho,
// e permite injetar falhas por operação.
type fakeLedger struct {
	rows map[domain.Channel][][]string

	readErr         error
	appendErr       error
	updateStatusErr error
	updateDateErr   error
	cancelReasonErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		rows: map[domain.Channel][][]string{
			domain.ChannelPresencial: {sheetHeader},
			domain.ChannelRemoto:     {sheetHeader},
		},
	}
}

func (f *fakeLedger) seed(ch domain.Channel, ap domain.Appointment) {
	f.rows[ch] = append(f.rows[ch], ap.Values())
}

func (f *fakeLedger) ReadAll(_ context.Context, ch domain.Channel) ([][]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.rows[ch], nil
}

func (f *fakeLedger) Append(_ context.Context, ch domain.Channel, row []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.rows[ch] = append(f.rows[ch], row)
	return nil
}

func (f *fakeLedger) UpdateStatus(_ context.Context, ch domain.Channel, rowIdx int, status domain.Status) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.rows[ch][rowIdx][domain.ColStatus] = string(status)
	return nil
}

func (f *fakeLedger) UpdateDateTime(_ context.Context, ch domain.Channel, rowIdx int, value string) error {
	if f.updateDateErr != nil {
		return f.updateDateErr
	}
	f.rows[ch][rowIdx][domain.ColDataHora] = value
	return nil
}

func (f *fakeLedger) UpdateCancelReason(_ context.Context, ch domain.Channel, rowIdx int, reason string) error {
	if f.cancelReasonErr != nil {
		return f.cancelReasonErr
	}
	f.rows[ch][rowIdx][domain.ColMotivoCancelamento] = reason
	return nil
}

func (f *fakeLedger) FindLatestByCustomer(_ context.Context, ch domain.Channel, waID string, status domain.Status) (int, []string, error) {
	if f.readErr != nil {
		return 0, nil, f.readErr
	}
	return domain.ScanLatestByCustomer(f.rows[ch], waID, status)
}
