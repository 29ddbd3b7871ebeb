package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldForSearch normaliza un término de búsqueda: minúsculas y sin acentos,
// para que "João" y "joao" se encuentren mutuamente.
func foldForSearch(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// matchesSearch informa si alguno de los campos contiene el término ya
// normalizado con foldForSearch.
func matchesSearch(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(foldForSearch(f), term) {
			return true
		}
	}
	return false
}
