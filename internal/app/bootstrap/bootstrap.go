// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	artworkcatalog "artjury/contexts/competition/artwork-catalog"
	catalogpostgres "artjury/contexts/competition/artwork-catalog/adapters/postgres"
	judgingengine "artjury/contexts/competition/judging-engine"
	judgingmemory "artjury/contexts/competition/judging-engine/adapters/memory"
	judgingpostgres "artjury/contexts/competition/judging-engine/adapters/postgres"
	panelservice "artjury/contexts/identity-access/panel-service"
	"artjury/contexts/identity-access/panel-service/adapters/crypto"
	panelpostgres "artjury/contexts/identity-access/panel-service/adapters/postgres"
	"artjury/internal/app/directory"
	"artjury/internal/app/seed"
	"artjury/internal/platform/config"
	"artjury/internal/platform/db"
	"artjury/internal/platform/httpserver"
	"artjury/internal/platform/session"
	"artjury/internal/platform/system"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Modules is the wired set of bounded contexts over one store.
type Modules struct {
	Catalog  artworkcatalog.Module
	Judging  judgingengine.Module
	Panel    panelservice.Module
	Sessions *session.Service
	postgres *db.Postgres
}

func (m *Modules) Seeder(logger *slog.Logger) seed.Seeder {
	return seed.Seeder{
		Admins:   m.Panel.Admins,
		Judges:   m.Panel.Handler.Judges,
		Artworks: m.Catalog.Handler.Artworks,
		Logger:   logger,
	}
}

func (m *Modules) Close() error {
	if m.postgres != nil {
		return m.postgres.Close()
	}
	return nil
}

// BuildModules wires every context to the configured store. The postgres
// driver migrates its tables before returning.
func BuildModules(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Modules, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sessions := session.NewService(cfg.Session.Secret, cfg.Session.TTL)
	hasher := crypto.BcryptHasher{}

	switch cfg.Store.Driver {
	case config.StoreMemory:
		catalog := artworkcatalog.NewInMemoryModule(nil, logger)
		panel := panelservice.NewInMemoryModule(hasher, sessions, logger)
		votes := judgingmemory.NewStore(nil)
		judging := judgingengine.NewModule(judgingengine.Dependencies{
			Votes:       votes,
			Artworks:    directory.Artworks{Catalog: catalog.Queries},
			Judges:      directory.Judges{Panel: panel.Queries},
			Clock:       votes,
			IDGenerator: votes,
			MaxScore:    cfg.Judging.MaxScore,
			TopN:        cfg.Judging.TopN,
			Logger:      logger,
		})
		judging.Store = votes
		return &Modules{Catalog: catalog, Judging: judging, Panel: panel, Sessions: sessions}, nil

	case config.StorePostgres:
		if strings.TrimSpace(cfg.Store.PostgresDSN) == "" {
			return nil, errors.New("POSTGRES_DSN is required")
		}
		pg, err := db.Connect(cfg.Store.PostgresDSN)
		if err != nil {
			return nil, err
		}

		artworkRepo := catalogpostgres.NewRepository(pg.DB, logger)
		voteRepo := judgingpostgres.NewRepository(pg.DB, logger)
		panelRepo := panelpostgres.NewRepository(pg.DB, logger)
		if err := db.Migrate(ctx, artworkRepo, voteRepo, panelRepo); err != nil {
			_ = pg.Close()
			return nil, err
		}

		catalog := artworkcatalog.NewModule(artworkcatalog.Dependencies{
			Artworks:    artworkRepo,
			Clock:       system.Clock{},
			IDGenerator: system.UUIDs{},
			Logger:      logger,
		})
		panel := panelservice.NewModule(panelservice.Dependencies{
			Repository:  panelRepo,
			Hasher:      hasher,
			Tokens:      sessions,
			Clock:       system.Clock{},
			IDGenerator: system.UUIDs{},
			Logger:      logger,
		})
		judging := judgingengine.NewModule(judgingengine.Dependencies{
			Votes:       voteRepo,
			Artworks:    directory.Artworks{Catalog: catalog.Queries},
			Judges:      directory.Judges{Panel: panel.Queries},
			Clock:       system.Clock{},
			IDGenerator: system.UUIDs{},
			MaxScore:    cfg.Judging.MaxScore,
			TopN:        cfg.Judging.TopN,
			Logger:      logger,
		})
		return &Modules{
			Catalog:  catalog,
			Judging:  judging,
			Panel:    panel,
			Sessions: sessions,
			postgres: pg,
		}, nil

	default:
		return nil, errors.New("unknown store driver " + cfg.Store.Driver)
	}
}

type APIApp struct {
	server  *httpserver.Server
	modules *Modules
	logger  *slog.Logger
}

func BuildAPI(ctx context.Context, cfg config.Config, logger *slog.Logger) (*APIApp, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("service", cfg.ServiceName, "process", "api")

	modules, err := BuildModules(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Store.Driver == config.StoreMemory {
		// The memory store starts empty; load the demo panel so someone can log in.
		if _, err := modules.Seeder(logger).SeedAll(ctx, seed.DefaultFixture()); err != nil {
			_ = modules.Close()
			return nil, err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	server := httpserver.New(modules.Catalog, modules.Judging, modules.Panel, httpserver.Options{
		Sessions:      modules.Sessions,
		Metrics:       httpserver.NewMetrics(registry),
		EnableSwagger: cfg.EnableSwagger,
	}, logger, normalizeAddr(cfg.HTTPPort))

	return &APIApp{
		server:  server,
		modules: modules,
		logger:  logger,
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *APIApp) Run(ctx context.Context) error {
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(a.server.Start)
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func (a *APIApp) Close() error {
	if a.modules != nil {
		return a.modules.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
