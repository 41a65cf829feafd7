// Package main provides the wordmill binary entry point. Wordmill builds a
// Markov chain model of a source text in a fixed-capacity probing hash table
// and generates pseudo-random text from it.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/mkarsten/wordmill/pkg/markov"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "wordmill",
		Short: "Generate pseudo-random text from a Markov model of a source text",
		Long: `Wordmill reads four values from its input stream, one per line:

  1. path to a source text file
  2. table capacity (slots in the fixed-size prefix table)
  3. prefix size (words per prefix)
  4. number of words to generate

It then models the source text as prefix -> suffix transitions and prints a
random walk over that model, ten words per line. Runs are reproducible: the
random seed is fixed in the config file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, configPath, logLevel)
			if err != nil {
				return err
			}
			return app.generate()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "wordmill.json", "Config file path (JSON)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:          "stats",
		Short:        "Build the model and print table statistics instead of text",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, configPath, logLevel)
			if err != nil {
				return err
			}
			return app.stats()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordmill version %s (commit: %s, built: %s)\n", Version, Commit, BuildDate)
		},
	})

	return cmd
}

// app ties a loaded config and logger to the command's streams. Generated
// text and the size-error messages go to out; logs go to the error stream so
// the data channel stays clean.
type app struct {
	cfg    *Config
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
}

func newApp(cmd *cobra.Command, configPath, logLevelOverride string) (*app, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLogLevel(level)}))

	return &app{
		cfg:    cfg,
		logger: logger,
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
	}, nil
}

// job is the four-value request read from the input stream, in fixed order.
type job struct {
	sourcePath string
	capacity   int
	order      int
	numWords   int
}

func readJob(r io.Reader) (job, error) {
	sc := bufio.NewScanner(r)
	nextLine := func(name string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("reading %s: %w", name, err)
			}
			return "", fmt.Errorf("reading %s: %w", name, io.ErrUnexpectedEOF)
		}
		return strings.TrimSpace(sc.Text()), nil
	}
	nextInt := func(name string) (int, error) {
		line, err := nextLine(name)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("parsing %s: %w", name, err)
		}
		return v, nil
	}

	var j job
	var err error
	if j.sourcePath, err = nextLine("source path"); err != nil {
		return job{}, err
	}
	if j.capacity, err = nextInt("table capacity"); err != nil {
		return job{}, err
	}
	if j.order, err = nextInt("prefix size"); err != nil {
		return job{}, err
	}
	if j.numWords, err = nextInt("text size"); err != nil {
		return job{}, err
	}
	return j, nil
}

// validate applies the size checks in their fixed order. A non-empty return
// is the message to print verbatim on the output stream; the run then stops
// with a success status and without touching the source file.
func (j job) validate() string {
	if j.order < 1 {
		return "ERROR: specified prefix size is less than one"
	}
	if j.numWords < 1 {
		return "ERROR: specified size of the generated text is less than one"
	}
	return ""
}

func (a *app) generate() error {
	j, err := readJob(a.in)
	if err != nil {
		return err
	}
	if msg := j.validate(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return nil
	}

	model, err := a.buildModel(j)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(a.cfg.Seed, 0))
	words := model.Generate(rng, j.numWords)
	a.logger.Info("text generated",
		slog.Int("requested", j.numWords),
		slog.Int("generated", len(words)),
	)

	writeLines(a.out, words, a.cfg.WordsPerLine)
	return nil
}

func (a *app) stats() error {
	j, err := readJob(a.in)
	if err != nil {
		return err
	}
	if msg := j.validate(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return nil
	}

	model, err := a.buildModel(j)
	if err != nil {
		return err
	}

	st := model.Stats()
	fmt.Fprintf(a.out, "order:              %d\n", st.Order)
	fmt.Fprintf(a.out, "distinct prefixes:  %d\n", st.DistinctPrefixes)
	fmt.Fprintf(a.out, "capacity:           %d\n", st.Capacity)
	fmt.Fprintf(a.out, "load factor:        %.3f\n", st.LoadFactor)
	fmt.Fprintf(a.out, "max probe distance: %d\n", st.MaxProbe)
	fmt.Fprintf(a.out, "total transitions:  %d\n", st.TotalTransitions)
	fmt.Fprintf(a.out, "max fanout:         %d\n", st.MaxFanout)
	fmt.Fprintf(a.out, "starter suffixes:   %d\n", st.StarterCount)
	return nil
}

// buildModel opens the source file and builds the transition table. A
// missing or unreadable file is a fatal error, unlike the size checks.
func (a *app) buildModel(j job) (*markov.Model, error) {
	f, err := os.Open(j.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("open source text: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	builder := markov.NewBuilder(nil)
	builder.SetLogger(a.logger)
	model, err := builder.Build(f, j.order, j.capacity)
	if err != nil {
		return nil, fmt.Errorf("build chain from %s: %w", j.sourcePath, err)
	}
	return model, nil
}

// writeLines prints words in generation order, perLine space-joined words to
// a line. Zero words prints nothing.
func writeLines(w io.Writer, words []string, perLine int) {
	if perLine < 1 {
		perLine = 1
	}
	for i := 0; i < len(words); i += perLine {
		end := min(i+perLine, len(words))
		fmt.Fprintln(w, strings.Join(words[i:end], " "))
	}
}
