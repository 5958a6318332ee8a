// Package serve implements the HTTP API server subcommand.
package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soluna/temple-go/internal/api"
	"github.com/soluna/temple-go/internal/chart"
	"github.com/soluna/temple-go/internal/conf"
	"github.com/soluna/temple-go/internal/datastore"
	"github.com/soluna/temple-go/internal/ephemeris"
	"github.com/soluna/temple-go/internal/logging"
	"github.com/soluna/temple-go/internal/observability"
)

// Command creates the serve command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart calculation HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(settings)
		},
	}
	cmd.Flags().StringVar(&settings.WebServer.Port, "port", settings.WebServer.Port, "Port to listen on")
	return cmd
}

func runServe(settings *conf.Settings) error {
	metrics, err := observability.NewMetrics()
	if err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}

	var table *ephemeris.Table
	if settings.Ephemeris.TablePath != "" {
		table, err = ephemeris.LoadTable(settings.Ephemeris.TablePath)
		if err != nil {
			return fmt.Errorf("loading ephemeris table: %w", err)
		}
		start, end := table.Window()
		logging.Info("ephemeris table loaded",
			"path", settings.Ephemeris.TablePath,
			"window_start", start.Format("2006-01-02"),
			"window_end", end.Format("2006-01-02"))
	} else {
		logging.Warn("no ephemeris table configured, all positions use the analytic model")
	}

	provider := ephemeris.NewProvider(table, logging.ForService("ephemeris"))
	provider.SetMetrics(metrics.Ephemeris)

	svc := chart.NewService(provider, logging.ForService("chart"))
	svc.SetMetrics(metrics.Chart)

	var ds datastore.Interface
	if store := datastore.New(settings); store != nil {
		if err := store.Open(); err != nil {
			return fmt.Errorf("opening datastore: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error("closing datastore", "error", err)
			}
		}()
		ds = store
	}

	apiLogger := logging.ForService("api")
	if settings.WebServer.Log.Enabled && settings.WebServer.Log.Path != "" {
		fileLogger, closeLog, err := logging.NewFileLogger(settings.WebServer.Log.Path, "api", slog.LevelInfo)
		if err != nil {
			return fmt.Errorf("opening web server log: %w", err)
		}
		defer func() {
			if err := closeLog(); err != nil {
				logging.Error("closing web server log", "error", err)
			}
		}()
		apiLogger = fileLogger
	}

	controller := api.New(settings, svc, ds, metrics, apiLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return controller.Start(ctx)
}
