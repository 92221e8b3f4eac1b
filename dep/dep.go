// Package dep implements the dependency-provenance contract the
// saturation engine treats as an opaque token (spec §6): a value
// recording which caller-supplied equations were used, transitively, to
// derive a given equation, with a Join operation that monoidally combines
// two tokens when one equation is used to reduce or superpose another.
package dep

import (
	"sort"

	"github.com/google/uuid"
)

// Token is a set of provenance labels, one per caller-supplied equation
// that contributed (directly or transitively) to the equation carrying
// this token. Labels are RFC 4122 UUIDv7s, minted once per caller Add
// call — grounded on roach88-nysm's flow-token minting
// (uuid.Must(uuid.NewV7())).
type Token struct {
	labels []uuid.UUID
}

// New mints a fresh, single-label token for a caller-supplied equation.
func New() Token {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the process clock or entropy source is
		// broken; a random v4 is a fine fallback provenance label.
		id = uuid.New()
	}
	return Token{labels: []uuid.UUID{id}}
}

// Join returns a token representing "both a and b were used" — the union
// of their provenance labels, deduplicated and sorted by their string
// form.
func Join(a, b Token) Token {
	merged := make([]uuid.UUID, 0, len(a.labels)+len(b.labels))
	merged = append(merged, a.labels...)
	merged = append(merged, b.labels...)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].String() < merged[j].String()
	})
	out := merged[:0]
	for i, id := range merged {
		if i == 0 || id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return Token{labels: append([]uuid.UUID(nil), out...)}
}

// Labels returns the token's provenance labels.
func (t Token) Labels() []uuid.UUID {
	return append([]uuid.UUID(nil), t.labels...)
}

// Contains reports whether id is one of t's provenance labels.
func (t Token) Contains(id uuid.UUID) bool {
	for _, l := range t.labels {
		if l == id {
			return true
		}
	}
	return false
}

// Len returns the number of distinct equations joined into t.
func (t Token) Len() int { return len(t.labels) }
