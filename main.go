package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"socialsim/config"
	"socialsim/handlers"
	"socialsim/logger"
	"socialsim/repositories"
	"socialsim/routes"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const envFile = ".env"

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "socialsim",
		Short: "In-memory social network simulator",
		Long: `socialsim reads one command per line and keeps every user, follow
relationship and post in memory until it exits.

Type 'help' at the prompt for the list of commands.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdin, stdout)
		},
	}

	flags := cmd.Flags()
	flags.String("input", "", "read commands from this file instead of stdin")
	flags.String("prompt", "> ", "prompt printed before each command")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.String("log-format", "text", "log format (text or json)")
	flags.String("metrics-addr", "", "serve /metrics on this address, e.g. :9100")
	return cmd
}

func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout io.Writer) error {
	logCloser, err := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	in := stdin
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	if cfg.MetricsAddr != "" {
		_, stop, err := startMetricsServer(cfg.MetricsAddr)
		if err != nil {
			return err
		}
		defer stop()
	}

	session := handlers.NewSession(
		repositories.NewUserRepository(),
		repositories.NewPostRepository(time.Now),
		stdout,
	)
	interpreter := routes.NewInterpreter(session, stdout, cfg.Prompt)
	return interpreter.Run(ctx, in)
}

// startMetricsServer listens on addr and serves the metrics router in the
// background. It returns the bound address and a function that shuts the
// server down.
func startMetricsServer(addr string) (string, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           routes.SetupRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("metrics server stopped")
		}
	}()
	logrus.WithField("addr", ln.Addr().String()).Info("metrics server running")

	return ln.Addr().String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logrus.WithError(err).Warn("metrics server shutdown")
		}
		<-done
	}, nil
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
