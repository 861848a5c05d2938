package fetch

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSONInto télécharge rawURL et décode le JSON dans dst (dst doit être un pointeur).
// Les limites de taille et de délai du Fetcher s'appliquent.
func (f *Fetcher) JSONInto(ctx context.Context, rawURL string, dst any) error {
	data, err := f.Bytes(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("fetch json: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("fetch json: decode: %w", err)
	}
	return nil
}

// FetchJSON générique : fetch + unmarshal dans une valeur typée.
func FetchJSON[T any](ctx context.Context, f *Fetcher, rawURL string) (T, error) {
	var zero T
	var v T
	if err := f.JSONInto(ctx, rawURL, &v); err != nil {
		return zero, err
	}
	return v, nil
}
