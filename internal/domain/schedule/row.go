package schedule

// ===============================
// Linha da Planilha
// ===============================

// Índices das colunas da planilha (coluna A = 0).
const (
	ColWAID = iota
	ColTipoCliente
	ColNomeCliente
	ColServico
	ColDataHora
	ColTelefone
	ColEndereco
	ColModeloEquipamento
	ColObservacao
	ColStatus
	ColMotivoCancelamento
)

// NumCols é a largura fixa de uma linha de agendamento.
const NumCols = ColMotivoCancelamento + 1

// SheetTimeFormat é o formato textual de data/hora usado nas células.
const SheetTimeFormat = "02/01/2006 15:04"

// QueueSentinel marca atendimentos remotos, que entram numa fila sem
// horário em vez de disputar slots.
const QueueSentinel = "Fila"

// Appointment é um agendamento tal como vive numa linha da planilha.
// A planilha é a dona exclusiva do registro: toda operação relê o estado
// atual em vez de guardar cópias.
type Appointment struct {
	WAID               string
	TipoCliente        string
	NomeCliente        string
	Servico            string
	DataHora           string
	Telefone           string
	Endereco           string
	ModeloEquipamento  string
	Observacao         string
	Status             Status
	MotivoCancelamento string
}

// Values serializa o agendamento na ordem das colunas.
func (a Appointment) Values() []string {
	return []string{
		a.WAID,
		a.TipoCliente,
		a.NomeCliente,
		a.Servico,
		a.DataHora,
		a.Telefone,
		a.Endereco,
		a.ModeloEquipamento,
		a.Observacao,
		string(a.Status),
		a.MotivoCancelamento,
	}
}

// AppointmentFromRow lê uma linha da planilha, tolerando linhas curtas.
func AppointmentFromRow(row []string) Appointment {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	return Appointment{
		WAID:               cell(ColWAID),
		TipoCliente:        cell(ColTipoCliente),
		NomeCliente:        cell(ColNomeCliente),
		Servico:            cell(ColServico),
		DataHora:           cell(ColDataHora),
		Telefone:           cell(ColTelefone),
		Endereco:           cell(ColEndereco),
		ModeloEquipamento:  cell(ColModeloEquipamento),
		Observacao:         cell(ColObservacao),
		Status:             ParseStatus(cell(ColStatus)),
		MotivoCancelamento: cell(ColMotivoCancelamento),
	}
}
