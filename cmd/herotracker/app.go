package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/heroquest-tracker/internal/catalog"
	"github.com/KirkDiggler/heroquest-tracker/internal/config"
	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
	"github.com/KirkDiggler/heroquest-tracker/internal/orchestrators/hero"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/heroquest-tracker/internal/redis"
	"github.com/KirkDiggler/heroquest-tracker/internal/repositories/snapshot"
)

const redisDialTimeout = 5 * time.Second

// app is one open session: storage, the async writer and the hero store
type app struct {
	cfg       *config.Config
	catalog   *catalog.Catalog
	store     hero.Service
	writer    *snapshot.AsyncWriter
	closeRepo func() error
	out       *printer
}

// newOfflineApp serves commands that only read the catalog
func newOfflineApp(out io.Writer) *app {
	return &app{
		catalog: catalog.Default(),
		out:     newPrinter(out),
	}
}

func openApp(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}
	opts.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	loaded, err := repo.Load(ctx, snapshot.LoadInput{Key: cfg.StateKey})
	if err != nil {
		_ = closeRepo()
		return nil, errors.Wrap(err, "failed to load heroes")
	}
	slog.DebugContext(ctx, "Loaded hero state",
		"backend", cfg.Backend,
		"key", cfg.StateKey,
		"found", loaded.Found,
		"hero_count", len(loaded.State.Heroes))

	writer, err := snapshot.NewAsyncWriter(&snapshot.WriterConfig{
		Repository:   repo,
		Key:          cfg.StateKey,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err != nil {
		_ = closeRepo()
		return nil, errors.Wrap(err, "failed to start writer")
	}

	store, err := hero.NewOrchestrator(&hero.Config{
		Catalog:     catalog.Default(),
		Persister:   writer,
		Clock:       clock.New(),
		EventBus:    newEventBus(),
		HistorySize: cfg.HistorySize,
		Initial:     loaded.State,
	})
	if err != nil {
		_ = writer.Close(ctx)
		_ = closeRepo()
		return nil, errors.Wrap(err, "failed to create hero store")
	}

	return &app{
		cfg:       cfg,
		catalog:   catalog.Default(),
		store:     store,
		writer:    writer,
		closeRepo: closeRepo,
		out:       newPrinter(cmd.OutOrStdout()),
	}, nil
}

func openRepository(ctx context.Context, cfg *config.Config) (snapshot.Repository, func() error, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client, err := redisclient.Connect(ctx, cfg.RedisAddr, &redisclient.Options{
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  redisDialTimeout,
			ReadTimeout:  cfg.WriteTimeout,
			WriteTimeout: cfg.WriteTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		repo, err := snapshot.NewRedisRepository(&snapshot.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, client.Close, nil

	case config.BackendSQLite:
		db, err := snapshot.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := snapshot.NewSQLiteRepository(&snapshot.SQLiteConfig{
			DB:    db,
			Clock: clock.New(),
		})
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	default:
		return nil, nil, errors.InvalidArgumentf("unknown backend: %s", cfg.Backend)
	}
}

// newEventBus logs every store notification at debug level
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range []string{
		hero.EventHeroCreated,
		hero.EventHeroDeleted,
		hero.EventHeroSelected,
		hero.EventHeroMutated,
		hero.EventHeroUndone,
		hero.EventHeroRedone,
	} {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			attrs := []any{"event_type", eventType}
			if source, ok := e.Source().(*entities.Hero); ok {
				attrs = append(attrs, "hero_id", source.ID, "updated_at", source.UpdatedAt)
			}
			if action, ok := e.Context().Get(hero.ContextKeyAction); ok {
				attrs = append(attrs, "action", action)
			}
			slog.DebugContext(ctx, "Hero event", attrs...)
			return nil
		})
	}
	return bus
}

// Close saves pending changes and releases storage. It runs even when ctx
// is already canceled so an interrupted session still writes its state.
func (a *app) Close(ctx context.Context) error {
	if a.writer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*a.cfg.WriteTimeout)
	defer cancel()

	writeErr := a.writer.Close(ctx)
	closeErr := a.closeRepo()
	if writeErr != nil {
		return errors.Wrap(writeErr, "failed to save heroes")
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "failed to close storage")
	}
	return nil
}

// currentHero returns the active hero or an error telling the user to pick one
func (a *app) currentHero() (*entities.Hero, error) {
	h := a.store.CurrentHero()
	if h == nil {
		return nil, errors.FailedPrecondition("no hero selected: create or select one first")
	}
	return h, nil
}
