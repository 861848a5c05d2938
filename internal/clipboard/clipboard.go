package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	ErrEmpty       = errors.New("le texte à copier ne peut pas être vide")
	ErrUnavailable = errors.New("presse-papier indisponible")
)

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
func WriteAll(text string) error {
	if text == "" {
		return ErrEmpty
	}
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// CopyVerified écrit text puis relit le presse-papier pour confirmer la copie.
func CopyVerified(text string) error {
	if err := WriteAll(text); err != nil {
		return err
	}
	if !Equals(text) {
		return ErrUnavailable
	}
	return nil
}

// Equals vérifie si le presse-papier contient exactement text
// (fin de ligne finale et CRLF Windows ignorés). Une erreur de lecture donne false.
func Equals(text string) bool {
	current, err := ReadAll()
	if err != nil {
		return false
	}
	normalize := func(s string) string {
		return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	}
	return normalize(current) == normalize(text)
}
