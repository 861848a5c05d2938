package book

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// toCP1252 prépare une chaîne pour les polices standard du PDF :
// normalisation NFC puis transcodage Windows-1252. Les caractères hors de la
// table (emoji, idéogrammes) sont supprimés.
func toCP1252(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteByte('\n')
			continue
		case r == '\t':
			b.WriteByte(' ')
			continue
		case unicode.IsControl(r):
			continue
		case r < 0x80:
			b.WriteByte(byte(r))
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
		}
	}
	return b.String()
}

var blankLine = regexp.MustCompile(`\n[ \t]*\n\s*`)

// splitDescription découpe une description en paragraphes : une ligne vide
// sépare deux paragraphes, un saut de ligne simple reste dans le paragraphe.
func splitDescription(desc string) []string {
	desc = strings.ReplaceAll(desc, "\r\n", "\n")
	desc = strings.ReplaceAll(desc, "\r", "\n")

	var out []string
	for _, p := range blankLine.Split(desc, -1) {
		p = strings.TrimRight(strings.Trim(p, "\n"), " \t")
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
