package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/geange/fsa"
	"github.com/geange/fsa/layout"
)

type options struct {
	in      string
	out     string
	config  string
	epsilon string
	listing bool
}

func main() {
	var (
		in      = flag.String("in", "", "Path to the saved NFA layout JSON file (required)")
		out     = flag.String("out", "", "Path to write the DFA layout to (default stdout)")
		config  = flag.String("config", "", "Path to layout config JSON file")
		epsilon = flag.String("epsilon", "", "Epsilon marker used in the layouts (overrides config)")
		listing = flag.Bool("listing", false, "Print the DFA as a state listing instead of a layout")
		verbose = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Usage: nfa2dfa -in <file> [-out <file>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("run_id", uuid.New().String())

	opts := options{
		in:      *in,
		out:     *out,
		config:  *config,
		epsilon: *epsilon,
		listing: *listing,
	}
	if err := run(opts, os.Stdout, logger); err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
}

func run(opts options, stdout io.Writer, logger *slog.Logger) error {
	cfg := layout.DefaultConfig()
	if opts.config != "" {
		loaded, err := layout.LoadConfig(opts.config)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if opts.epsilon != "" {
		cfg.EpsilonMarker = opts.epsilon
	}

	nfaLayout, err := layout.Load(opts.in)
	if err != nil {
		return err
	}

	nfa, err := nfaLayout.Automaton(cfg)
	if err != nil {
		return fmt.Errorf("invalid automaton in %s: %w", opts.in, err)
	}
	logger.Info("loaded automaton",
		"file", opts.in,
		"states", nfa.NumStates(),
		"transitions", nfa.NumTransitions(),
		"deterministic", nfa.IsDeterministic())

	dfa, err := nfa.Determinize(fsa.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to determinize: %w", err)
	}
	logger.Info("determinized", "states", dfa.NumStates(), "final", len(dfa.FinalStates()))

	if opts.listing {
		_, err := io.WriteString(stdout, dfa.String())
		return err
	}

	result := layout.FromDFA(dfa, cfg)
	if opts.out == "" {
		return result.Encode(stdout)
	}
	if err := result.Save(opts.out); err != nil {
		return err
	}
	logger.Info("wrote layout", "file", opts.out)
	return nil
}
