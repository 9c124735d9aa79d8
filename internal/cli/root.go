// Package cli implements the gqlir command line.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	config "github.com/hanpama/gqlir/internal/config"
	eventbus "github.com/hanpama/gqlir/internal/eventbus"
	otel "github.com/hanpama/gqlir/internal/otel"
)

// RootOptions holds global flags and the state PersistentPreRunE derives
// from them.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OTelEndpoint string
	OTelService  string
	OTelInsecure bool

	Config config.Config
	Logger *zap.Logger

	shutdown func(context.Context) error
}

// shutdownTimeout bounds exporter flushing once a command has finished.
const shutdownTimeout = 5 * time.Second

// Execute runs the root command with args and releases the logger and the
// tracer provider however the command ends.
func Execute(ctx context.Context, args []string) error {
	cmd, opts := newRootCommand()
	cmd.SetArgs(args)
	return opts.execute(ctx, cmd)
}

// NewRootCommand creates the gqlir root command. Callers that run it
// directly own cleanup; Execute handles it for them.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *RootOptions) {
	opts := &RootOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:           "gqlir",
		Short:         "gqlir - typed IR over compiled GraphQL documents",
		Long:          "Compile GraphQL operations against a schema, decode the compiler output and build persisted query manifests.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", defaults.LogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.OTelEndpoint, "otel.endpoint", defaults.OTel.Endpoint, "OTLP collector endpoint")
	cmd.PersistentFlags().StringVar(&opts.OTelService, "otel.service", defaults.OTel.Service, "OpenTelemetry service name")
	cmd.PersistentFlags().BoolVar(&opts.OTelInsecure, "otel.insecure", defaults.OTel.Insecure, "dial the OTLP collector without TLS")

	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewManifestCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))

	return cmd, opts
}

// execute runs cmd and tears down whether or not the command fails.
func (o *RootOptions) execute(ctx context.Context, cmd *cobra.Command) (err error) {
	defer func() {
		if terr := o.teardown(ctx); terr != nil && err == nil {
			err = terr
		}
	}()
	return cmd.ExecuteContext(ctx)
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("otel.endpoint") {
		cfg.OTel.Endpoint = o.OTelEndpoint
	}
	if flags.Changed("otel.service") {
		cfg.OTel.Service = o.OTelService
	}
	if flags.Changed("otel.insecure") {
		cfg.OTel.Insecure = o.OTelInsecure
	}
	o.Config = cfg

	if o.Logger, err = newLogger(cfg.LogLevel); err != nil {
		return err
	}

	eventbus.Use(eventbus.New())
	o.shutdown, err = otel.Setup(cfg.OTel.Endpoint, cfg.OTel.Service, cfg.OTel.Insecure)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	return nil
}

// teardown flushes the logger and shuts the tracer provider down. The
// command context may already be cancelled by a signal, so shutdown runs
// detached from it with its own timeout.
func (o *RootOptions) teardown(ctx context.Context) error {
	if o.Logger != nil {
		_ = o.Logger.Sync()
	}
	shutdown := o.shutdown
	o.shutdown = nil
	if shutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		return fmt.Errorf("otel shutdown: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
