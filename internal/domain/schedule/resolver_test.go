package schedule

import (
	"errors"
	"testing"
	"time"
)

// quarta-feira, 14/01/2026
var ref = time.Date(2026, 1, 14, 10, 30, 0, 0, time.UTC)

func TestResolveDateTime_Relativos(t *testing.T) {
	cases := []struct {
		name string
		text string
		want time.Time
	}{
		{"hoje", "hoje às 15:00", time.Date(2026, 1, 14, 15, 0, 0, 0, time.UTC)},
		{"amanha", "amanhã às 09:00", time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)},
		{"amanha sem acento", "amanha 9h00", time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)},
		{"sem dia assume hoje", "às 16:30", time.Date(2026, 1, 14, 16, 30, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveDateTime(tc.text, ref)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("esperado %s, veio %s", tc.want, got)
			}
		})
	}
}

func TestResolveDateTime_DiasDaSemana(t *testing.T) {
	cases := []struct {
		name string
		text string
		want time.Time
	}{
		// ref é quarta: sexta está 2 dias à frente
		{"dia futuro na semana", "sexta às 10:00", time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)},
		// segunda já passou nesta semana: vai para a próxima
		{"dia passado vira proxima semana", "segunda às 10:00", time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)},
		// citar o dia de hoje significa a próxima ocorrência
		{"mesmo dia pula uma semana", "quarta às 10:00", time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC)},
		{"acento no nome do dia", "terça às 11:00", time.Date(2026, 1, 20, 11, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveDateTime(tc.text, ref)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("esperado %s, veio %s", tc.want, got)
			}
		})
	}
}

func TestResolveDateTime_SemanaQueVem(t *testing.T) {
	// sexta desta semana seria 16/01; "semana que vem" empurra para 23/01
	got, err := ResolveDateTime("sexta da semana que vem às 14:00", ref)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	want := time.Date(2026, 1, 23, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("esperado %s, veio %s", want, got)
	}
}

func TestResolveDateTime_FimDeSemanaRolaParaSegunda(t *testing.T) {
	// sábado 17/01 rola para segunda 19/01; domingo 18/01 idem
	cases := []struct {
		text string
		want time.Time
	}{
		{"sábado às 10:00", time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)},
		{"domingo às 10:00", time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ResolveDateTime(tc.text, ref)
		if err != nil {
			t.Fatalf("%q: erro inesperado: %v", tc.text, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%q: esperado %s, veio %s", tc.text, tc.want, got)
		}
	}
}

func TestResolveDateTime_FormatosDeHora(t *testing.T) {
	cases := []struct {
		text      string
		hour, min int
	}{
		{"hoje às 14:00", 14, 0},
		{"hoje às 14h30", 14, 30},
		{"hoje às 9h", 9, 0},
		{"hoje às 09:05", 9, 5},
	}
	for _, tc := range cases {
		got, err := ResolveDateTime(tc.text, ref)
		if err != nil {
			t.Fatalf("%q: erro inesperado: %v", tc.text, err)
		}
		if got.Hour() != tc.hour || got.Minute() != tc.min {
			t.Fatalf("%q: esperado %02d:%02d, veio %02d:%02d", tc.text, tc.hour, tc.min, got.Hour(), got.Minute())
		}
	}
}

func TestResolveDateTime_SemHora(t *testing.T) {
	for _, text := range []string{"amanhã", "terça de manhã", "25:00", "10h75"} {
		_, err := ResolveDateTime(text, ref)
		if err == nil {
			t.Fatalf("%q: esperado erro, veio nil", text)
		}
		var unresolved *UnresolvedTimeError
		if !errors.As(err, &unresolved) {
			t.Fatalf("%q: esperado UnresolvedTimeError, veio %T", text, err)
		}
	}
}

func TestResolveDateTime_PrimeiroDiaCitadoVence(t *testing.T) {
	// "terça ou quarta": a ordem da semana decide, não a ordem no texto
	got, err := ResolveDateTime("pode ser quarta ou terça às 10:00", ref)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	// entre terça (20/01) e quarta (21/01), vence terça
	if got.Day() != 20 {
		t.Fatalf("esperado dia 20, veio %d", got.Day())
	}
}
