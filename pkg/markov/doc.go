/*
Package markov builds a word-level Markov chain model of a source text and
generates new pseudo-random text from it.

The model is stored in a fixed-capacity probing hash table
(github.com/mkarsten/wordmill/pkg/fixedmap) keyed by space-joined prefixes of
a configurable order. Because the table never resizes, the slot a prefix lands
in, the order its suffixes are stored in, and therefore the generated output
for a fixed random seed are all reproducible across runs.
*/
package markov
