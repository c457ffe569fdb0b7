// Package cli wires the wordladder commands.
package cli

import (
	"context"
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
)

// rootOptions holds the persistent flags and the resolved configuration.
type rootOptions struct {
	configPath string
	verbose    bool
	logFormat  string
	noIndex    bool

	cfg config.Config
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	ro := &rootOptions{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:               "wordladder",
		Short:             "Find the shortest word ladder between two words",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: ro.setup,
	}
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&ro.configPath, "config", "c", "", "path to YAML config file")
	pf.StringVarP(&ro.cfg.Dictionary, "dictionary", "d", ro.cfg.Dictionary, "word list, one word per line")
	pf.IntVar(&ro.cfg.MinLength, "min-length", ro.cfg.MinLength, "shortest word to load (0 = no bound)")
	pf.IntVar(&ro.cfg.MaxLength, "max-length", ro.cfg.MaxLength, "longest word to load (0 = no bound)")
	pf.StringVarP(&ro.cfg.Strategy, "strategy", "s", ro.cfg.Strategy, "search strategy: strict-shortest, first-found, bfs")
	pf.IntVar(&ro.cfg.MaxDepth, "max-depth", ro.cfg.MaxDepth, "longest ladder in steps (0 = no limit)")
	pf.BoolVar(&ro.noIndex, "no-index", false, "scan the alphabet instead of building the wildcard index")
	pf.BoolVarP(&ro.verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&ro.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newSolveCommand(ro),
		newBatchCommand(ro),
		newServeCommand(ro),
		newStatsCommand(ro),
	)
	return rootCmd
}

// setup configures logging and merges the config file under explicit flags.
func (ro *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	if ro.verbose {
		log.SetLevel(log.DebugLevel)
	}
	if ro.logFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	log.SetOutput(cmd.ErrOrStderr())

	if ro.configPath != "" {
		fileCfg, err := config.Load(ro.configPath)
		if err != nil {
			return err
		}
		mergeFlags(cmd, &fileCfg, ro.cfg)
		ro.cfg = fileCfg
	}
	if ro.noIndex {
		ro.cfg.WildcardIndex = false
	}
	return ro.cfg.Validate()
}

// mergeFlags copies every explicitly set flag value from flagCfg into dst.
func mergeFlags(cmd *cobra.Command, dst *config.Config, flagCfg config.Config) {
	changed := func(name string) bool { return cmd.Flags().Changed(name) }
	if changed("dictionary") {
		dst.Dictionary = flagCfg.Dictionary
	}
	if changed("min-length") {
		dst.MinLength = flagCfg.MinLength
	}
	if changed("max-length") {
		dst.MaxLength = flagCfg.MaxLength
	}
	if changed("strategy") {
		dst.Strategy = flagCfg.Strategy
	}
	if changed("max-depth") {
		dst.MaxDepth = flagCfg.MaxDepth
	}
	if changed("workers") {
		dst.Workers = flagCfg.Workers
	}
	if changed("timeout") {
		dst.Timeout = flagCfg.Timeout
	}
	if changed("listen") {
		dst.Listen = flagCfg.Listen
	}
}

// loadLexicon reads the configured dictionary, falling back to the
// built-in word list when the file does not exist.
func (ro *rootOptions) loadLexicon() (*lexicon.Lexicon, error) {
	lx, err := lexicon.Load(ro.cfg.Dictionary, ro.cfg.LexiconOptions()...)
	if errors.Is(err, os.ErrNotExist) {
		log.Warnf("dictionary %s not found, using built-in word list", ro.cfg.Dictionary)
		return lexicon.Fallback(ro.cfg.LexiconOptions()...), nil
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"dictionary": ro.cfg.Dictionary,
		"words":      lx.Len(),
		"indexed":    lx.Indexed(),
	}).Debug("lexicon loaded")
	return lx, nil
}

// newSolver loads the lexicon and binds it to a Solver.
func (ro *rootOptions) newSolver() (*ladder.Solver, error) {
	lx, err := ro.loadLexicon()
	if err != nil {
		return nil, err
	}
	opts := append(ro.cfg.SolverOptions(), ladder.WithLogger(log.StandardLogger()))
	return ladder.NewSolver(lx, opts...)
}
