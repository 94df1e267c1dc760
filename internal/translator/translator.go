// Package translator maps characters typed on one keyboard layout to the
// characters the same physical keys produce on another.
package translator

import (
	"fmt"
	"strings"

	"layoutsyn/internal/errors"
	"layoutsyn/internal/layout"
)

// Translator is a positional rune-to-rune mapping between two key sequences.
// It is read-only after construction and safe for concurrent use.
type Translator struct {
	table map[rune]rune
}

// Build pairs from[i] with to[i] for every position both sequences share.
// When the lengths differ, pairing stops at the shorter sequence and the
// trailing keys of the longer one get no mapping.
func Build(from, to []rune) *Translator {
	n := len(from)
	if len(to) < n {
		n = len(to)
	}

	table := make(map[rune]rune, n)
	for i := 0; i < n; i++ {
		table[from[i]] = to[i]
	}
	return &Translator{table: table}
}

// New builds a translator between two layouts and rejects layouts whose key
// counts differ instead of truncating.
func New(from, to layout.Layout) (*Translator, error) {
	if from.Len() != to.Len() {
		return nil, errors.NewLayoutError(
			fmt.Sprintf("cannot pair %s (%d keys) with %s (%d keys)", from.Name(), from.Len(), to.Name(), to.Len()),
			nil,
		)
	}
	return Build(from.Keys(), to.Keys()), nil
}

// Lookup returns the target character for r.
func (t *Translator) Lookup(r rune) (rune, bool) {
	out, ok := t.table[r]
	return out, ok
}

// Len returns the size of the translator's domain.
func (t *Translator) Len() int {
	return len(t.table)
}

// Translate maps every character of word. The second result is false when
// some character has no mapping, in which case the returned string is empty.
func (t *Translator) Translate(word string) (string, bool) {
	var b strings.Builder
	b.Grow(len(word))

	for _, r := range word {
		out, ok := t.table[r]
		if !ok {
			return "", false
		}
		b.WriteRune(out)
	}
	return b.String(), true
}
