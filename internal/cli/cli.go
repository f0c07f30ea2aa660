// Package cli implements the careguide command line over a local session.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/senior-care-guide/internal/config"
	"github.com/senior-care-guide/internal/service"
	"github.com/senior-care-guide/internal/session"
	"github.com/senior-care-guide/internal/storage"
)

// App holds what every command needs. The session is opened per command so
// the SQLite file is only held while a command runs.
type App struct {
	cfg     *config.LiteConfig
	version string
	clock   func() time.Time
	logger  *logrus.Logger

	dataDir string
	asJSON  bool
}

// Option configures an App.
type Option func(*App)

// WithConfig replaces the environment-derived configuration.
func WithConfig(cfg *config.LiteConfig) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithClock sets the clock used for "today".
func WithClock(clock func() time.Time) Option {
	return func(a *App) { a.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// NewRootCommand builds the careguide command tree.
func NewRootCommand(version string, opts ...Option) *cobra.Command {
	a := &App{version: version, clock: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	if a.cfg == nil {
		a.cfg = config.LoadLiteConfig()
	}

	root := &cobra.Command{
		Use:   "careguide",
		Short: "Plan senior care: care path recommendation and waitlist follow-ups",
		Long: `careguide answers a short questionnaire about an older adult, recommends a
care path (Home Care, Retirement Home or Long-Term Care) with reasons and next
steps, and tracks facility waitlist applications with follow-up reminders.

Everything is stored locally in the data directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			logger, err := config.NewLogger(a.cfg.LogLevel, a.cfg.LogFormat, "stderr")
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default $SCG_DATA_DIR or ~/.senior-care-guide)")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(
		a.assessCommand(),
		a.recommendCommand(),
		a.langCommand(),
		a.waitlistCommand(),
		a.exportCommand(),
		a.importCommand(),
		a.setupCommand(),
		a.versionCommand(),
	)

	return root
}

// withSession opens the store and session, runs fn, and closes the store.
func (a *App) withSession(ctx context.Context, fn func(*session.Session) error) error {
	cfg := *a.cfg
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := storage.NewSQLiteStore(cfg.StatePath())
	if err != nil {
		return err
	}
	defer store.Close()

	sess := session.Open(ctx, store,
		session.WithLogger(a.log()),
		session.WithClock(a.clock),
		session.WithDefaultLanguage(cfg.Language),
		session.WithRecommender(service.NewCarePathEngine(a.log())),
	)
	return fn(sess)
}

func (a *App) exportDir() string {
	cfg := *a.cfg
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	return cfg.ExportDir()
}

func (a *App) log() *logrus.Logger {
	if a.logger == nil {
		return logrus.StandardLogger()
	}
	return a.logger
}

func (a *App) printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "careguide version %s\n", a.version)
		},
	}
}
