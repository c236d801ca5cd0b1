// Package transliteration turns romanized pseudo-words into Hangul syllable
// blocks, e.g. "alpha beta" becomes "알파 베타".
//
// The conversion is a single pass over ASCII input. Letters without a
// mapping, digits, punctuation and non-ASCII bytes are copied unchanged.
package transliteration

import (
	"context"

	"github.com/terzeron/rogue-kr/internal/locale"
	"golang.org/x/sync/errgroup"
)

// Transliterator converts text when its locale gate asks for it. The zero
// value never converts. It is safe for concurrent use.
type Transliterator struct {
	gate locale.Gate
}

func New(gate locale.Gate) *Transliterator {
	return &Transliterator{gate: gate}
}

// Transliterate converts text using the process-wide locale gate.
func Transliterate(text string) string {
	return New(locale.Default()).Transliterate(text)
}

// Transliterate returns text unchanged when the gate is off.
func (t *Transliterator) Transliterate(text string) string {
	if !t.gate.Requires() {
		return text
	}
	return Hangul(text)
}

// Hangul converts text regardless of locale.
func Hangul(text string) string {
	if text == "" {
		return ""
	}
	return newScanner(text).run()
}

// Syllables returns the blocks Hangul(text) would produce, with their
// components, in output order.
func Syllables(text string) []Syllable {
	s := newScanner(text)
	s.run()
	return s.syllables()
}

// TransliterateAll converts texts concurrently, keeping input order. At most
// workers conversions run at once; workers <= 0 means no limit.
func (t *Transliterator) TransliterateAll(ctx context.Context, texts []string, workers int) ([]string, error) {
	out := make([]string, len(texts))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, text := range texts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = t.Transliterate(text)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
