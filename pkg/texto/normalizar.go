// Package texto normaliza cadenas para búsqueda: sin tildes, en minúsculas.
// "José Pérez" y "jose perez" deben encontrar el mismo cliente.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalizar devuelve s sin marcas diacríticas, en minúsculas y sin espacios
// sobrantes. Si la transformación falla devuelve la cadena en minúsculas.
func Normalizar(s string) string {
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
