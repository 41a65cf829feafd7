package markov

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
)

// drain reads every token from a stream until io.EOF.
func drain(t *testing.T, s StreamTokenizer) []string {
	t.Helper()
	var tokens []string
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			return tokens
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		tokens = append(tokens, tok)
	}
}

func TestWordTokenizer(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "one two three",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "mixed whitespace",
			input: "  one\ttwo\n\nthree \r\n four ",
			want:  []string{"one", "two", "three", "four"},
		},
		{
			name:  "punctuation stays attached",
			input: "hello, world!",
			want:  []string{"hello,", "world!"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  nil,
		},
	}

	tokenizer := NewWordTokenizer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := drain(t, tokenizer.NewStream(strings.NewReader(tc.input)))
			if !slices.Equal(got, tc.want) {
				t.Errorf("tokens = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWordTokenizerEOFIsSticky(t *testing.T) {
	stream := NewWordTokenizer().NewStream(strings.NewReader("only"))
	if _, err := stream.Next(); err != nil {
		t.Fatalf("first Next() error = %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := stream.Next(); !errors.Is(err, io.EOF) {
			t.Errorf("Next() after exhaustion error = %v, want io.EOF", err)
		}
	}
}
