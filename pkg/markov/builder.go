package markov

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mkarsten/wordmill/pkg/fixedmap"
)

// Builder constructs Models from source text. It holds the tokenizer and a
// logger; the zero value is not usable, construct one with NewBuilder.
type Builder struct {
	tokenizer Tokenizer
	logger    *slog.Logger
}

// NewBuilder returns a Builder using the given tokenizer. A nil tokenizer
// selects the default whitespace WordTokenizer.
func NewBuilder(tokenizer Tokenizer) *Builder {
	if tokenizer == nil {
		tokenizer = NewWordTokenizer()
	}
	return &Builder{
		tokenizer: tokenizer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Builder and for the Models it builds.
// By default all logs are discarded.
func (b *Builder) SetLogger(logger *slog.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Build reads the source text from r, tokenizes it, and populates a
// transition table of the given capacity with every order-length prefix and
// the token that follows it.
//
// The token sequence is extended with order NonWord markers at the front and
// one at the back, so the first real word is reachable from the start state
// and the last window records an end-of-text transition. Every window of
// order+1 consecutive tokens contributes one (prefix, suffix) pair, where the
// prefix is the first order tokens joined by single spaces.
//
// The capacity must be large enough for every distinct prefix in the source;
// a source with more distinct prefixes than slots fails with an error
// wrapping fixedmap.ErrTableFull.
func (b *Builder) Build(r io.Reader, order, capacity int) (*Model, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	table, err := fixedmap.New(capacity)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, order)
	for i := range tokens {
		tokens[i] = NonWord
	}

	stream := b.tokenizer.NewStream(r)
	for {
		word, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}
		tokens = append(tokens, word)
	}
	sourceWords := len(tokens) - order
	tokens = append(tokens, NonWord)

	for i := 0; i+order < len(tokens); i++ {
		prefix := strings.Join(tokens[i:i+order], " ")
		if err := table.Put(prefix, tokens[i+order]); err != nil {
			return nil, fmt.Errorf("insert transition for prefix %q: %w", prefix, err)
		}
	}

	b.logger.Debug("chain built",
		slog.Int("order", order),
		slog.Int("source_words", sourceWords),
		slog.Int("distinct_prefixes", table.Len()),
		slog.Int("capacity", capacity),
	)

	return &Model{order: order, table: table, logger: b.logger}, nil
}
