package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/fleetcalc/internal/config"
	"github.com/udisondev/fleetcalc/internal/data"
	"github.com/udisondev/fleetcalc/internal/db"
	"github.com/udisondev/fleetcalc/internal/game/spotting"
	"github.com/udisondev/fleetcalc/internal/report"
)

const ConfigPath = "config/fleetcalc.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fleetcalc", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "config file (default $FLEETCALC_CONFIG or "+ConfigPath+")")
	planPath := fs.String("plan", "", "fleet plan YAML (overrides plan_path)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *cfgPath == "" {
		*cfgPath = ConfigPath
		if p := os.Getenv("FLEETCALC_CONFIG"); p != "" {
			*cfgPath = p
		}
	}

	// Config first: it decides the log level
	cfg, err := config.LoadFleetCalc(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *planPath != "" {
		cfg.PlanPath = *planPath
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", *cfgPath, "master_source", cfg.Master.Source, "plan", cfg.PlanPath)

	air, err := spotting.ParseAirState(cfg.AirState)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var (
		master *data.Master
		input  data.PlanInput
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := loadMaster(gctx, cfg)
		if err != nil {
			return fmt.Errorf("loading master data: %w", err)
		}
		master = m
		return nil
	})
	g.Go(func() error {
		in, err := data.LoadPlanFile(cfg.PlanPath)
		if err != nil {
			return fmt.Errorf("loading plan: %w", err)
		}
		input = in
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	plan, err := master.BuildPlan(input)
	if err != nil {
		return fmt.Errorf("building plan: %w", err)
	}

	rep, err := report.Build(ctx, plan, report.Options{AirState: air})
	if err != nil {
		return fmt.Errorf("computing report: %w", err)
	}
	return report.Write(os.Stdout, rep)
}

// loadMaster reads gear and ship records from the configured source.
func loadMaster(ctx context.Context, cfg config.FleetCalc) (*data.Master, error) {
	if cfg.Master.Source == config.MasterSourceYAML {
		return data.LoadMasterFile(cfg.Master.Path)
	}

	dsn := cfg.Database.DSN()
	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	if cfg.Master.Migrate {
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")
	}

	return db.NewMasterRepository(database.Pool()).LoadMaster(ctx)
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
