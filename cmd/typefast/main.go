// Package main provides the CLI entrypoint for typefast.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typefast/internal/config"
	"github.com/verte-zerg/typefast/internal/game"
	"github.com/verte-zerg/typefast/internal/generator"
	"github.com/verte-zerg/typefast/internal/model"
	"github.com/verte-zerg/typefast/internal/stats"
	"github.com/verte-zerg/typefast/internal/store"
	"github.com/verte-zerg/typefast/internal/timer"
	"github.com/verte-zerg/typefast/internal/tui"
	"github.com/verte-zerg/typefast/internal/wordlist"
)

const (
	defaultTrendWindow = 5
	defaultTermWidth   = 80
	trendLabel         = "Trend: "
)

var (
	practiceWords    int
	practiceWordList string
	practiceDebug    bool

	recordsLast int

	resetYes bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typefast",
		Short:         "Terminal typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().IntVar(&practiceWords, "words", game.DefaultPassageWords, "words per passage")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "path to a word list file (default: built-in)")
	rootCmd.Flags().BoolVar(&practiceDebug, "debug", false, "write a debug log to the data directory")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newRecordsCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolvePlayConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	if cfg.Debug {
		logPath := config.DebugLogPath(cfg.DataDir)
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		f, err := tea.LogToFile(logPath, "typefast")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close debug log: %v\n", cerr)
			}
		}()
	} else {
		log.SetOutput(io.Discard)
	}

	src, err := loadSource(cfg.WordListPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	countdown := timer.New(time.Second)
	defer countdown.Stop()

	opts := game.Options{
		Passages:     src,
		Timer:        countdown,
		PassageWords: cfg.Words,
	}
	st, openErr := openStore(ctx, config.DBPath(cfg.DataDir))
	if openErr == nil {
		opts.Store = st
		defer func() {
			if cerr := st.Close(); cerr != nil && !errors.Is(cerr, store.ErrClosed) {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}
	ctrl := game.New(opts)
	if openErr != nil {
		ctrl.RecordFailure(game.FailureConnection, openErr)
	}

	ui := tui.NewModel(ctx, ctrl, tui.NewRenderer())
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := ui.Err(); err != nil {
		logErrf("failed to close db: %v\n", err)
	}
	return nil
}

func resolvePlayConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)

	return model.Config{
		Words:        practiceWords,
		WordListPath: practiceWordList,
		DataDir:      dataDir(fileCfg),
		Debug:        practiceDebug,
	}, nil
}

func dataDir(fileCfg config.FileConfig) string {
	if fileCfg.Storage.DataDir != nil && *fileCfg.Storage.DataDir != "" {
		return *fileCfg.Storage.DataDir
	}
	return config.DefaultDataDir()
}

func loadSource(path string) (*wordlist.Source, error) {
	words := wordlist.Default()
	if path != "" {
		loaded, err := wordlist.LoadWords(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
		}
		words = loaded
	}
	src, err := wordlist.NewSource(words, generator.New())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare word list: %w", err)
	}
	return src, nil
}

func openStore(ctx context.Context, path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	if err := st.EnsureSchema(ctx); err != nil {
		if cerr := st.Close(); cerr != nil {
			// Best-effort close after a schema failure.
			_ = cerr
		}
		return nil, err
	}
	return st, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig creates the config file from the template unless it
// already exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Show stored results",
		Args:  cobra.NoArgs,
		RunE:  runRecordsCmd,
	}
	cmd.Flags().IntVar(&recordsLast, "last", 0, "limit to last N records")
	return cmd
}

func runRecordsCmd(cmd *cobra.Command, _ []string) error {
	if recordsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx := context.Background()
	st, err := openStore(ctx, config.DBPath(dataDir(fileCfg)))
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(ctx, st, recordsLast, defaultTrendWindow)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, report.Summary); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if report.Summary.Count == 0 {
		return nil
	}
	if err := stats.RenderRecords(out, report.Records); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	trend := report.Trend
	if limit := terminalWidth() - len(trendLabel); limit > 0 && len(trend) > limit {
		trend = trend[len(trend)-limit:]
	}
	if _, err := fmt.Fprintf(out, "%s%s\n", trendLabel, stats.Sparkline(trend)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored results",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deleting every record")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	if !resetYes {
		return fmt.Errorf("refusing to delete records without --yes")
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx := context.Background()
	st, err := openStore(ctx, config.DBPath(dataDir(fileCfg)))
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.DropAll(ctx); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "All records deleted."); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typefast configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d             # Words per passage
# wordlist = ""           # Word list file, one word per line (default: built-in)

[storage]
# data-dir = %q
`,
		game.DefaultPassageWords,
		config.DefaultDataDir(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
