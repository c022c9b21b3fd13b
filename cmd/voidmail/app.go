package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/EC-WIN-24-NET/VoidMail/config"
	"github.com/EC-WIN-24-NET/VoidMail/internal/adapters/email"
	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
	"github.com/EC-WIN-24-NET/VoidMail/internal/factories"
	"github.com/EC-WIN-24-NET/VoidMail/internal/repository/cached"
	"github.com/EC-WIN-24-NET/VoidMail/internal/repository/postgres"
	"github.com/EC-WIN-24-NET/VoidMail/internal/services"
)

const dbPingTimeout = 5 * time.Second

// app holds the wired services shared by the commands.
type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	db          *sql.DB
	events      domain.EventService
	mail        domain.MailService
	eventEmails domain.EmailService
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, config.NewLogger(cfg), nil
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func newMailService(cfg *config.Config, logger *slog.Logger) domain.MailService {
	return services.NewMailService(cfg.Settings, email.NewClientFactory(logger), logger)
}

func newApp(ctx context.Context) (*app, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := openDB(ctx, cfg.DBUrl)
	if err != nil {
		return nil, err
	}

	var repo domain.EventRepository = postgres.NewEventRepository(db, logger)
	if cfg.EventCacheTTL > 0 {
		repo = cached.NewEventRepository(repo, cfg.EventCacheTTL)
		logger.Info("event read cache enabled", "ttl", cfg.EventCacheTTL)
	}

	loc, err := cfg.Location()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	displays := factories.NewEventDisplayFactory(factories.NewPackageDisplayFactory(), loc)
	events := services.NewEventService(repo, displays, logger, cfg.ServiceTimeout)
	mail := newMailService(cfg, logger)

	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &app{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		events:      events,
		mail:        mail,
		eventEmails: services.NewEmailService(events, mail, renderer, logger),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
