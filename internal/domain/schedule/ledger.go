package schedule

import (
	"context"
	"errors"
	"strings"
)

// ===============================
// Porta do Registro de Agendamentos
// ===============================

// Channel identifica a partição (aba) onde o agendamento vive.
type Channel string

const (
	ChannelPresencial Channel = "PRESENCIAL"
	ChannelRemoto     Channel = "REMOTO"
)

// ErrRowNotFound indica que nenhuma linha do cliente foi encontrada.
// Falhas de transporte NUNCA são convertidas neste erro.
var ErrRowNotFound = errors.New("linha não encontrada")

// Ledger é a porta para o registro tabular de agendamentos, particionado
// por canal. A linha 0 de ReadAll é o cabeçalho e os chamadores a ignoram;
// os índices de linha das demais operações são os mesmos de ReadAll.
type Ledger interface {
	ReadAll(ctx context.Context, ch Channel) ([][]string, error)

	// Append adiciona uma nova linha ao fim da partição.
	Append(ctx context.Context, ch Channel, row []string) error

	// UpdateStatus é a escrita autoritativa de estado.
	UpdateStatus(ctx context.Context, ch Channel, rowIdx int, status Status) error

	UpdateDateTime(ctx context.Context, ch Channel, rowIdx int, value string) error

	// UpdateCancelReason é uma escrita lateral de melhor esforço;
	// o status continua sendo o campo autoritativo.
	UpdateCancelReason(ctx context.Context, ch Channel, rowIdx int, reason string) error

	// FindLatestByCustomer varre da linha mais recente para trás e devolve
	// o índice e o conteúdo da primeira linha do cliente que casa com o
	// filtro de status (StatusQualquer desliga o filtro). A linha mais
	// recente vence quando o cliente tem várias linhas históricas.
	FindLatestByCustomer(ctx context.Context, ch Channel, waID string, status Status) (int, []string, error)
}

// ScanLatestByCustomer implementa a varredura de FindLatestByCustomer sobre
// uma tabela já carregada; adaptadores sem consulta própria a reutilizam.
func ScanLatestByCustomer(rows [][]string, waID string, status Status) (int, []string, error) {
	for i := len(rows) - 1; i >= 1; i-- {
		row := rows[i]
		if len(row) <= ColWAID || strings.TrimSpace(row[ColWAID]) != waID {
			continue
		}
		if status != StatusQualquer {
			if len(row) <= ColStatus || ParseStatus(row[ColStatus]) != status {
				continue
			}
		}
		return i, row, nil
	}
	return 0, nil, ErrRowNotFound
}
