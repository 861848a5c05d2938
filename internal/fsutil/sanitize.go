package fsutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// longueur maximale d'un nom (en octets)
const maxNameLen = 120

// caractères interdits sous Windows, contrôles et espaces
var invalidNameRunes = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F\s]+`)

var repeatedUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename transforme name en nom de fichier portable :
// "Libro de recetas: 2025" -> "Libro_de_recetas_2025".
// Retourne fallback si rien d'exploitable ne reste.
func SanitizeFilename(name, fallback string) string {
	clean := invalidNameRunes.ReplaceAllString(name, "_")
	clean = repeatedUnderscore.ReplaceAllString(clean, "_")
	clean = strings.Trim(clean, "._ ")

	if len(clean) > maxNameLen {
		clean = clean[:maxNameLen]
		for !utf8.ValidString(clean) {
			clean = clean[:len(clean)-1]
		}
	}
	if clean == "" {
		return fallback
	}
	return clean
}
