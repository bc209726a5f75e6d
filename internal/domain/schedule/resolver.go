package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ===============================
// Datas em Linguagem Natural
// ===============================

// UnresolvedTimeError indica que nenhum horário de relógio foi encontrado
// no texto. Carrega o texto ofensivo para reapresentar ao cliente.
type UnresolvedTimeError struct {
	Text string
}

func (e *UnresolvedTimeError) Error() string {
	return fmt.Sprintf("hora não encontrada no texto: %q", e.Text)
}

// A ordem importa: quando o texto cita mais de um dia ("terça ou quarta"),
// vence o primeiro da semana, como na comparação sequencial original.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"segunda", time.Monday},
	{"terca", time.Tuesday},
	{"quarta", time.Wednesday},
	{"quinta", time.Thursday},
	{"sexta", time.Friday},
	{"sabado", time.Saturday},
	{"domingo", time.Sunday},
}

var nextWeekPhrases = []string{"semana que vem", "proxima semana", "outra semana"}

var clockPattern = regexp.MustCompile(`(\d{1,2})[:h](\d{2})?`)

// ResolveDateTime converte texto como "amanhã às 14:00" ou "terça às 10h"
// em data/hora absolutas a partir da data de referência. Horários são
// ingênuos/locais; não há tratamento de fuso.
func ResolveDateTime(text string, ref time.Time) (time.Time, error) {
	normalized := Normalize(text)

	nextWeek := false
	for _, phrase := range nextWeekPhrases {
		if strings.Contains(normalized, phrase) {
			nextWeek = true
			break
		}
	}

	days := 0
	switch {
	case strings.Contains(normalized, "amanha"):
		days = 1
	case strings.Contains(normalized, "hoje"):
		days = 0
	default:
		for _, wd := range weekdayNames {
			if !strings.Contains(normalized, wd.name) {
				continue
			}
			days = (int(wd.day) - int(ref.Weekday()) + 7) % 7
			if days == 0 {
				// o nome do dia de hoje significa a próxima ocorrência
				days = 7
			}
			if nextWeek {
				days += 7
			}
			break
		}
	}

	date := ref.AddDate(0, 0, days)

	// só agendamos em dias úteis: fim de semana rola para segunda
	switch date.Weekday() {
	case time.Saturday:
		date = date.AddDate(0, 0, 2)
	case time.Sunday:
		date = date.AddDate(0, 0, 1)
	}

	hour, minute, ok := extractClock(normalized)
	if !ok {
		return time.Time{}, &UnresolvedTimeError{Text: text}
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, ref.Location()), nil
}

// extractClock procura um horário H[:h]MM? e devolve o primeiro válido.
func extractClock(text string) (int, int, bool) {
	for _, m := range clockPattern.FindAllStringSubmatch(text, -1) {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour <= 23 && minute <= 59 {
			return hour, minute, true
		}
	}
	return 0, 0, false
}
