package markov

import (
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Generate walks the model and returns up to numWords generated words.
//
// The walk starts from the all-NonWord prefix. At each step the current
// prefix is looked up in the table; a miss ends the walk, as does drawing the
// NonWord end marker. When a prefix has more than one recorded suffix, one is
// chosen uniformly with rng; a sole suffix is taken directly and consumes no
// randomness, so the rng stream depends only on the branching points of the
// walk. After a word is emitted the prefix rotates: its first token is
// dropped and the chosen word appended.
//
// The result is shorter than numWords exactly when a terminal state was
// reached early. rng must not be nil unless the model is known to have no
// branching prefixes.
func (m *Model) Generate(rng *rand.Rand, numWords int) []string {
	result := make([]string, 0, max(numWords, 0))
	prefix := m.startPrefix()

	for len(result) < numWords {
		suffixes, ok := m.table.Get(prefix)
		if !ok {
			m.logger.Debug("generation stopped at unseen prefix",
				slog.String("prefix", prefix),
				slog.Int("generated", len(result)),
			)
			break
		}

		suffix := suffixes[0]
		if len(suffixes) > 1 {
			suffix = suffixes[rng.IntN(len(suffixes))]
		}

		if suffix == NonWord {
			m.logger.Debug("generation stopped at end marker",
				slog.Int("generated", len(result)),
			)
			break
		}

		result = append(result, suffix)
		parts := strings.Split(prefix, " ")
		prefix = strings.Join(append(parts[1:], suffix), " ")
	}

	return result
}
