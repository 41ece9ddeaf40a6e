package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/config"
	"github.com/diegoclair/report-relay-bot/internal/database"
	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
	"github.com/diegoclair/report-relay-bot/internal/domain/service"
	"github.com/diegoclair/report-relay-bot/internal/handlers"
	"github.com/diegoclair/report-relay-bot/internal/logger"
	"github.com/diegoclair/report-relay-bot/internal/metrics"
	"github.com/diegoclair/report-relay-bot/internal/report"
	"github.com/diegoclair/report-relay-bot/internal/slackbot"
	"github.com/diegoclair/report-relay-bot/internal/telegram"
	"github.com/diegoclair/report-relay-bot/migrator/sqlite"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// shutdownGrace is added to one full cycle (generation plus delivery) on shutdown.
const shutdownGrace = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, logCloser, err := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, log)
	log.Sync()
	logCloser.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	schedule, err := cfg.Schedule()
	if err != nil {
		return err
	}

	if cfg.DatabasePath == "" {
		log.Warn("DATABASE_PATH is empty, the dispatch ledger is kept in memory only")
	}
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations completed successfully")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPrometheusRecorder("", registry)
	if err != nil {
		return err
	}

	args := cfg.ReportArgs()
	source, err := report.New(report.Config{Path: args[0], Args: args[1:], Dir: cfg.ReportWorkdir}, log)
	if err != nil {
		return err
	}

	deps := service.Dependencies{
		DataManager: database.NewInstance(db),
		Source:      source,
		Recorder:    recorder,
		Logger:      log,
		Destination: cfg.ChatID,
		Schedule:    schedule,
		Timeout:     cfg.DispatchTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	mux.Handle("/metrics", metrics.Handler(registry))

	var (
		instance *service.Instance
		// poll runs the platform's receive loop, if it has one
		poll func(ctx context.Context)
		// slackHandler is set on the slack platform only
		slackHandler *handlers.SlackHandler
	)

	switch cfg.Platform {
	case config.PlatformTelegram:
		b, err := bot.New(cfg.TelegramBotToken,
			bot.WithErrorsHandler(func(err error) {
				log.Warn("Telegram polling error", zap.Error(err))
			}),
			bot.WithDefaultHandler(func(context.Context, *bot.Bot, *models.Update) {}),
		)
		if err != nil {
			return fmt.Errorf("failed to start telegram bot: %w", err)
		}

		sink := telegram.NewSink(b, log)
		if instance, err = newInstance(deps, sink); err != nil {
			return err
		}

		telegram.NewCommands(instance.Router, instance.Status, sink, log, schedule.Location).Register(b)
		poll = b.Start

	case config.PlatformSlack:
		sink := slackbot.NewSink(slack.New(cfg.SlackBotToken), log)
		if instance, err = newInstance(deps, sink); err != nil {
			return err
		}

		slackHandler = handlers.New(instance.Router, instance.Status, sink, cfg.SlackSigningSecret, log, schedule.Location)
		mux.HandleFunc("/slack/commands", slackHandler.HandleSlashCommand)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Bot started successfully",
		zap.String("platform", cfg.Platform),
		zap.String("timezone", schedule.Location.String()),
		zap.String("chat_id", cfg.ChatID),
		zap.String("schedule", schedule.CronExpr()),
		zap.Time("next_report", instance.Scheduler.NextFire(time.Now())),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		instance.Scheduler.Run(gctx, instance.Router.OnScheduledTick)
		return nil
	})

	if poll != nil {
		g.Go(func() error {
			poll(gctx)
			log.Info("Telegram polling stopped")
			return nil
		})
	}

	g.Go(func() error {
		log.Info("Server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.DispatchTimeout*2+shutdownGrace)
		defer cancel()

		var result *multierror.Error
		if err := server.Shutdown(shutdownCtx); err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to shut down server: %w", err))
		}
		if slackHandler != nil {
			slackHandler.Wait()
		}
		if err := instance.Router.Shutdown(shutdownCtx); err != nil {
			result = multierror.Append(result, fmt.Errorf("in-flight dispatch did not finish: %w", err))
		}
		return result.ErrorOrNil()
	})

	return g.Wait()
}

func newInstance(deps service.Dependencies, sink contract.MessageSink) (*service.Instance, error) {
	deps.Sink = sink

	instance, err := service.NewInstance(deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatch core: %w", err)
	}
	return instance, nil
}
