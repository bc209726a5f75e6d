package ledger

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	domain "github.com/Speakmu/whatsapp-bot-agendamento/internal/domain/schedule"
)

// ======================================================
// GOOGLE SHEETS
// ======================================================

// SheetsLedger guarda os agendamentos numa planilha do Google, uma aba por
// canal. É o backend de produção: a planilha é o registro autoritativo.
type SheetsLedger struct {
	svc           *sheets.Service
	spreadsheetID string
	tabs          map[domain.Channel]string
}

func NewSheetsLedger(
	ctx context.Context,
	credentialsFile string,
	spreadsheetID string,
	tabs map[domain.Channel]string,
) (*SheetsLedger, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: criando serviço: %w", err)
	}

	return &SheetsLedger{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		tabs:          tabs,
	}, nil
}

func (l *SheetsLedger) tab(ch domain.Channel) string {
	if name, ok := l.tabs[ch]; ok && name != "" {
		return name
	}
	return string(ch)
}

func (l *SheetsLedger) ReadAll(ctx context.Context, ch domain.Channel) ([][]string, error) {
	resp, err := l.svc.Spreadsheets.Values.
		Get(l.spreadsheetID, l.tab(ch)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: lendo aba %s: %w", l.tab(ch), err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *SheetsLedger) Append(ctx context.Context, ch domain.Channel, row []string) error {
	values := make([]any, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.tab(ch), &sheets.ValueRange{Values: [][]any{values}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: gravando na aba %s: %w", l.tab(ch), err)
	}
	return nil
}

func (l *SheetsLedger) UpdateStatus(ctx context.Context, ch domain.Channel, rowIdx int, status domain.Status) error {
	return l.updateCell(ctx, ch, rowIdx, domain.ColStatus, string(status))
}

func (l *SheetsLedger) UpdateDateTime(ctx context.Context, ch domain.Channel, rowIdx int, value string) error {
	return l.updateCell(ctx, ch, rowIdx, domain.ColDataHora, value)
}

func (l *SheetsLedger) UpdateCancelReason(ctx context.Context, ch domain.Channel, rowIdx int, reason string) error {
	return l.updateCell(ctx, ch, rowIdx, domain.ColMotivoCancelamento, reason)
}

func (l *SheetsLedger) FindLatestByCustomer(ctx context.Context, ch domain.Channel, waID string, status domain.Status) (int, []string, error) {
	rows, err := l.ReadAll(ctx, ch)
	if err != nil {
		return 0, nil, err
	}
	return domain.ScanLatestByCustomer(rows, waID, status)
}

// updateCell escreve uma única célula. rowIdx é o índice de ReadAll
// (0 = cabeçalho); a notação A1 é 1-based.
func (l *SheetsLedger) updateCell(ctx context.Context, ch domain.Channel, rowIdx, col int, value string) error {
	rng := fmt.Sprintf("%s!%s%d", l.tab(ch), columnLetter(col), rowIdx+1)

	_, err := l.svc.Spreadsheets.Values.
		Update(l.spreadsheetID, rng, &sheets.ValueRange{Values: [][]any{{value}}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: atualizando %s: %w", rng, err)
	}
	return nil
}

// as 11 colunas do agendamento cabem em A..K
func columnLetter(col int) string {
	return string(rune('A' + col))
}
