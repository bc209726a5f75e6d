package schedule

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ===============================
// Roteamento por Cidade
// ===============================

// Palavras-chave que roteiam o atendimento para a aba presencial
// ("São Sebastião do Paraíso" e variações). Qualquer outra cidade é remota.
var onSiteKeywords = []string{"sebastiao", "paraiso", "presencial"}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize remove acentos e baixa a caixa para comparação.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// ClassifyDestination decide o canal a partir da cidade informada pelo
// cliente, ignorando caixa, acentos e erros de digitação parciais.
func ClassifyDestination(city string) Channel {
	c := Normalize(city)
	for _, kw := range onSiteKeywords {
		if strings.Contains(c, kw) {
			return ChannelPresencial
		}
	}
	return ChannelRemoto
}
