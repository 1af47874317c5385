// Package textutil normaliza texto libre que llega desde la API.
package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName recorta espacios y lleva el nombre a forma NFC, de modo que
// "é" compuesto y "e"+acento combinado cuenten y se guarden igual.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NameLength devuelve la longitud en caracteres (runas), la misma unidad que
// usa char_length en PostgreSQL.
func NameLength(s string) int {
	return utf8.RuneCountInString(s)
}
