// Package main provides the CLI entrypoint for typerace.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typerace/internal/clock"
	"github.com/verte-zerg/typerace/internal/config"
	"github.com/verte-zerg/typerace/internal/generator"
	"github.com/verte-zerg/typerace/internal/logging"
	"github.com/verte-zerg/typerace/internal/model"
	"github.com/verte-zerg/typerace/internal/race"
	"github.com/verte-zerg/typerace/internal/tui"
	"github.com/verte-zerg/typerace/internal/wordlist"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "typerace",
		Short:         "Terminal typing race",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRace,
	}
}

func runRace(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typerace needs an interactive terminal")
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := fileCfg.Resolve()

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	words, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	gen, err := generator.New(words)
	if err != nil {
		return fmt.Errorf("failed to create word generator: %w", err)
	}
	clk := clock.System{}
	session, err := race.NewSession(gen, clk)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	logger.Info().Int("dictionary", len(words)).Str("lang", cfg.Lang).Msg("starting typerace")

	program := tea.NewProgram(tui.NewModel(session, clk, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func loadDictionary(cfg model.Config) ([]string, error) {
	if cfg.WordListPath == "" {
		return wordlist.Default(), nil
	}
	words, err := wordlist.LoadWords(cfg.WordListPath, wordlist.FilterForLang(cfg.Lang))
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordListPath, err)
	}
	return words, nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
