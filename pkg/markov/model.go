package markov

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/mkarsten/wordmill/pkg/fixedmap"
)

// NonWord is the reserved marker token. It pads the start of the token
// stream (so the walk has a well-defined start state) and terminates it (so
// the walk has a well-defined stopping condition). It is not expected to
// appear as a real word in source text.
const NonWord = "@"

// ErrInvalidOrder is returned by Build when the requested prefix order is
// less than one.
var ErrInvalidOrder = errors.New("markov: prefix order must be at least one")

// Model is a populated Markov chain: a prefix->suffixes transition table of a
// fixed order. A Model is built once by a Builder and is read-only
// afterwards.
type Model struct {
	order  int
	table  *fixedmap.Table
	logger *slog.Logger
}

// Order returns the number of words in each prefix.
func (m *Model) Order() int { return m.order }

// Table returns the underlying transition table. Callers must treat it as
// read-only; mutating it would change the walk the model produces.
func (m *Model) Table() *fixedmap.Table { return m.table }

// startPrefix is the walk's initial state: order NonWord markers joined by
// single spaces.
func (m *Model) startPrefix() string {
	parts := make([]string, m.order)
	for i := range parts {
		parts[i] = NonWord
	}
	return strings.Join(parts, " ")
}
