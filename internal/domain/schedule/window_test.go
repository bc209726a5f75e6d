package schedule

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 1, 15, hour, min, 0, 0, time.UTC)
}

func TestWorkingWindowContains(t *testing.T) {
	w := WorkingWindow{Start: 9 * time.Hour, End: 12 * time.Hour}

	if !w.Contains(at(9, 0)) {
		t.Fatal("início da janela deve estar contido")
	}
	if !w.Contains(at(11, 59)) {
		t.Fatal("último minuto antes do fim deve estar contido")
	}
	if w.Contains(at(12, 0)) {
		t.Fatal("fim da janela é exclusivo")
	}
	if w.Contains(at(8, 59)) {
		t.Fatal("antes do início não está contido")
	}
}

func TestAgendaInWorkingHours(t *testing.T) {
	agenda := DefaultAgenda()

	cases := []struct {
		hour, min int
		want      bool
	}{
		{9, 0, true},
		{11, 0, true},
		{12, 0, false}, // almoço
		{13, 30, false},
		{14, 0, true},
		{17, 59, true},
		{18, 0, false},
		{8, 0, false},
	}

	for _, tc := range cases {
		if got := agenda.InWorkingHours(at(tc.hour, tc.min)); got != tc.want {
			t.Fatalf("%02d:%02d: esperado %v, veio %v", tc.hour, tc.min, tc.want, got)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if ParseStatus("  pendente ") != StatusPendente {
		t.Fatal("status deve ser normalizado em maiúsculas sem espaços")
	}
	if ParseStatus("CANCELADO") != StatusCancelado {
		t.Fatal("status já normalizado deve passar direto")
	}
}

func TestAppointmentRowRoundTrip(t *testing.T) {
	a := Appointment{
		WAID:        "5511999999999",
		NomeCliente: "Maria",
		DataHora:    "15/01/2026 09:00",
		Status:      StatusPendente,
	}

	row := a.Values()
	if len(row) != NumCols {
		t.Fatalf("esperado %d colunas, veio %d", NumCols, len(row))
	}

	back := AppointmentFromRow(row)
	if back != a {
		t.Fatalf("linha reconstruída difere: %+v", back)
	}
}

func TestAppointmentFromRowCurta(t *testing.T) {
	// linhas antigas podem não ter as colunas de status
	a := AppointmentFromRow([]string{"5511999999999", "Novo", "Maria"})
	if a.WAID != "5511999999999" || a.NomeCliente != "Maria" {
		t.Fatalf("campos presentes devem ser lidos: %+v", a)
	}
	if a.Status != StatusQualquer {
		t.Fatalf("colunas ausentes devem ficar vazias, veio %q", a.Status)
	}
}
