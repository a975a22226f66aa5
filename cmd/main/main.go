package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/console"
	"github.com/UnknownOlympus/hestia/internal/credentials"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/server"
	"github.com/UnknownOlympus/hestia/internal/services/auth"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	go func() {
		// The console may be blocked on stdin; a second signal falls back to the default handler.
		<-ctx.Done()
		stop()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hestia:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "hestia",
		Short:         "Employee management console",
		Long:          "Hestia is an interactive console for managing employee records as an admin or an employee.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, cfgFile, func(ctx context.Context, app *application) error {
				return app.console.Run(ctx)
			})
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the config file (overrides CONFIG_PATH)")

	root.AddCommand(&cobra.Command{
		Use:   "set-admin-password",
		Short: "Create or replace the admin password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, cfgFile, func(ctx context.Context, app *application) error {
				stored, err := app.console.SetAdminPassword(ctx)
				if err != nil {
					return err
				}
				if !stored {
					return errors.New("admin password was not changed")
				}
				return nil
			})
		},
	})

	return root
}

// application bundles the wired dependencies of a single command run.
type application struct {
	cfg     *config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	reg     *prometheus.Registry
	store   credentials.Store
	console *console.Console
}

func withApp(cmd *cobra.Command, cfgFile string, run func(ctx context.Context, app *application) error) error {
	ctx := cmd.Context()

	app, err := newApplication(cmd, cfgFile)
	if err != nil {
		return err
	}
	defer app.pool.Close()

	var wgr sync.WaitGroup
	monitorCtx, cancelMonitor := context.WithCancel(ctx)
	if app.cfg.Monitoring.Port > 0 {
		wgr.Add(1)
		go func() {
			defer wgr.Done()
			server.StartMonitoringServer(monitorCtx, app.log, app.reg, app.pool, app.store, app.cfg.Monitoring.Port)
		}()
	}

	err = run(ctx, app)
	cancelMonitor()
	wgr.Wait()

	switch {
	case errors.Is(err, context.Canceled):
		app.log.InfoContext(ctx, "Interrupted, exiting")
		return nil
	case err != nil:
		app.log.ErrorContext(ctx, "Command failed", sl.Err(err))
		return err
	}

	return nil
}

func newApplication(cmd *cobra.Command, cfgFile string) (*application, error) {
	if cfgFile == "" {
		cfgFile = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	credentialRepo := repository.NewAdminCredentialRepository(dtb, appMetrics)

	store, err := credentials.New(cfg.Credentials.Backend, cfg.Credentials.File, credentialRepo)
	if err != nil {
		dtb.Close()
		return nil, err
	}

	authenticator := auth.NewAuthenticator(logger, employeeRepo, store, appMetrics)
	staff := employees.NewStaff(logger, employeeRepo)

	logger.Debug("Application wired",
		slog.String("env", cfg.Env),
		slog.String("credentials_backend", cfg.Credentials.Backend))

	return &application{
		cfg:     cfg,
		log:     logger,
		pool:    dtb,
		reg:     reg,
		store:   store,
		console: console.New(logger, cmd.InOrStdin(), cmd.OutOrStdout(), authenticator, staff, appMetrics),
	}, nil
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to stderr so they never interleave with the console on stdout.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{Key: "", Value: slog.Value{}}
		}
		return a
	}

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
