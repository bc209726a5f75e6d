package ledger

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/models"
)

// ======================================================
// POSTGRES (GORM)
// ======================================================

// GormLedger é o backend alternativo do registro, para implantações sem
// planilha. Honra o mesmo contrato de índices de linha: a posição na ordem
// de inserção, com o índice 0 reservado ao cabeçalho sintético.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

var headerRow = []string{
	"WA_ID", "Tipo Cliente", "Nome", "Serviço", "Data/Hora", "Telefone",
	"Endereço", "Modelo Equipamento", "Observação", "Status", "Motivo Cancelamento",
}

func (l *GormLedger) ReadAll(ctx context.Context, ch domain.Channel) ([][]string, error) {
	var recs []models.Appointment
	if err := l.db.WithContext(ctx).
		Where("channel = ?", string(ch)).
		Order("id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("ledger: lendo canal %s: %w", ch, err)
	}

	rows := make([][]string, 0, len(recs)+1)
	rows = append(rows, headerRow)
	for _, rec := range recs {
		rows = append(rows, []string{
			rec.WAID,
			rec.TipoCliente,
			rec.NomeCliente,
			rec.Servico,
			rec.DataHora,
			rec.Telefone,
			rec.Endereco,
			rec.ModeloEquipamento,
			rec.Observacao,
			rec.Status,
			rec.MotivoCancelamento,
		})
	}
	return rows, nil
}

func (l *GormLedger) Append(ctx context.Context, ch domain.Channel, row []string) error {
	ap := domain.AppointmentFromRow(row)

	rec := models.Appointment{
		Channel:            string(ch),
		WAID:               ap.WAID,
		TipoCliente:        ap.TipoCliente,
		NomeCliente:        ap.NomeCliente,
		Servico:            ap.Servico,
		DataHora:           ap.DataHora,
		Telefone:           ap.Telefone,
		Endereco:           ap.Endereco,
		ModeloEquipamento:  ap.ModeloEquipamento,
		Observacao:         ap.Observacao,
		Status:             string(ap.Status),
		MotivoCancelamento: ap.MotivoCancelamento,
	}

	if err := l.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("ledger: gravando no canal %s: %w", ch, err)
	}
	return nil
}

func (l *GormLedger) UpdateStatus(ctx context.Context, ch domain.Channel, rowIdx int, status domain.Status) error {
	return l.updateColumn(ctx, ch, rowIdx, "status", string(status))
}

func (l *GormLedger) UpdateDateTime(ctx context.Context, ch domain.Channel, rowIdx int, value string) error {
	return l.updateColumn(ctx, ch, rowIdx, "data_hora", value)
}

func (l *GormLedger) UpdateCancelReason(ctx context.Context, ch domain.Channel, rowIdx int, reason string) error {
	return l.updateColumn(ctx, ch, rowIdx, "motivo_cancelamento", reason)
}

func (l *GormLedger) FindLatestByCustomer(ctx context.Context, ch domain.Channel, waID string, status domain.Status) (int, []string, error) {
	rows, err := l.ReadAll(ctx, ch)
	if err != nil {
		return 0, nil, err
	}
	return domain.ScanLatestByCustomer(rows, waID, status)
}

// updateColumn traduz o índice de linha do contrato (1-based sobre os
// dados) para o registro correspondente na ordem de inserção.
func (l *GormLedger) updateColumn(ctx context.Context, ch domain.Channel, rowIdx int, column, value string) error {
	if rowIdx < 1 {
		return errors.New("ledger: índice de linha inválido")
	}

	var ids []uint
	if err := l.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("channel = ?", string(ch)).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("ledger: resolvendo linha %d do canal %s: %w", rowIdx, ch, err)
	}

	if rowIdx > len(ids) {
		return fmt.Errorf("ledger: linha %d fora do canal %s", rowIdx, ch)
	}

	if err := l.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ids[rowIdx-1]).
		Update(column, value).Error; err != nil {
		return fmt.Errorf("ledger: atualizando %s da linha %d: %w", column, rowIdx, err)
	}
	return nil
}
