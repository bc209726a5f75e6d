package validators

import "strings"

// SanitizePhone limpa o telefone informado em texto livre, mantendo apenas
// dígitos e o prefixo internacional. Devolve vazio quando não sobra nada
// aproveitável.
func SanitizePhone(raw string) string {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	s := b.String()
	if s == "" || s == "+" {
		return ""
	}
	return s
}
