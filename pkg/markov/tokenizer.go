package markov

import (
	"bufio"
	"io"
)

// Tokenizer is an interface that defines the contract for splitting input
// text into word tokens. It keeps the chain builder independent of the
// specific splitting strategy.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
}

// StreamTokenizer is an interface for a stateful tokenizer that processes a
// stream of data, returning one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as the
	// error when the stream is fully consumed.
	Next() (string, error)
}

// WordTokenizer is the default Tokenizer. It splits input on runs of
// whitespace, so a token is any maximal run of non-space characters.
type WordTokenizer struct{}

// NewWordTokenizer returns a whitespace-splitting tokenizer.
func NewWordTokenizer() *WordTokenizer { return &WordTokenizer{} }

// NewStream returns the stream processor.
func (t *WordTokenizer) NewStream(r io.Reader) StreamTokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &wordStream{scanner: sc}
}

type wordStream struct {
	scanner *bufio.Scanner
}

// Next returns the next whitespace-delimited token, or io.EOF when the
// stream is exhausted. Any other error indicates a problem reading from the
// underlying stream.
func (s *wordStream) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
