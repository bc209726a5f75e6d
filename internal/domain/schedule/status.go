package schedule

import "strings"

// ===============================
// Status do Agendamento
// ===============================

type Status string

const (
	StatusPendente  Status = "PENDENTE"
	StatusCancelado Status = "CANCELADO"

	// StatusQualquer desliga o filtro de status nas buscas.
	StatusQualquer Status = ""
)

// ParseStatus lê o valor da célula de forma tolerante: a planilha pode
// conter espaços ou caixa mista; a escrita é sempre em maiúsculas.
func ParseStatus(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}
