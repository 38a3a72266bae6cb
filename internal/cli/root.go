// Package cli implements the appwrite command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/DrewBradfordXYZ/appwrite-go"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// Environment variables read when the matching flag is not set.
const (
	EnvEndpoint = "APPWRITE_ENDPOINT"
	EnvProject  = "APPWRITE_PROJECT_ID"
	EnvAPIKey   = "APPWRITE_API_KEY"
)

func Run() ExitCode {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

// app holds the state shared by all commands.
type app struct {
	endpoint string
	project  string
	key      string
	envFile  string
	rate     float64
	verbose  bool

	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
	client *appwrite.Client
}

// NewRootCmd builds the command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:          "appwrite",
		Short:        "Command line client for the Appwrite API.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.endpoint, "endpoint", "", "API endpoint (env "+EnvEndpoint+")")
	flags.StringVarP(&a.project, "project", "p", "", "project ID (env "+EnvProject+")")
	flags.StringVarP(&a.key, "key", "k", "", "API key (env "+EnvAPIKey+")")
	flags.StringVar(&a.envFile, "env-file", ".env", "file to load environment variables from")
	flags.Float64Var(&a.rate, "rate", 0, "limit requests per second (0 disables)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "set debug logging level")

	rootCmd.AddCommand(
		newDatabasesCmd(a),
		newTablesCmd(a),
		newRowsCmd(a),
		newSitesCmd(a),
		newTokensCmd(a),
		newSchemaCmd(a),
	)
	return rootCmd
}

// connect loads the environment and creates the API client.
func (a *app) connect() error {
	a.log = newLogger(a.errOut, a.verbose)

	if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", a.envFile, err)
	}
	if a.endpoint == "" {
		a.endpoint = os.Getenv(EnvEndpoint)
	}
	if a.project == "" {
		a.project = os.Getenv(EnvProject)
	}
	if a.key == "" {
		a.key = os.Getenv(EnvAPIKey)
	}
	if a.project == "" {
		return fmt.Errorf("--project or %s is required", EnvProject)
	}

	opts := []appwrite.Option{
		appwrite.WithLogger(a.log),
		appwrite.WithDebug(a.verbose),
		appwrite.WithOnRateLimit(func(info appwrite.RateLimitInfo) {
			a.log.Warn("rate limited", "url", info.RequestURL, "retryAfter", info.RetryAfter)
		}),
	}
	if a.key != "" {
		opts = append(opts, appwrite.WithAPIKey(a.key))
	}
	if a.rate > 0 {
		opts = append(opts, appwrite.WithTokenBucketThrottle(a.rate, max(1, int(a.rate))))
	}

	c, err := appwrite.New(a.endpoint, a.project, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	a.client = c
	a.log.Debug("connected", "endpoint", c.Endpoint(), "project", a.project)
	return nil
}

// preRun is used as PersistentPreRunE by every command that talks to the API.
func (a *app) preRun(cmd *cobra.Command, args []string) error {
	return a.connect()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
