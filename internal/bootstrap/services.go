package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/player"
	"github.com/osse101/itemforge/internal/scheduler"
	"github.com/osse101/itemforge/internal/worker"
)

// Services holds the long-lived application services
type Services struct {
	Players *player.Registry
	Catalog catalog.Service

	// Set only when periodic catalog reload is enabled
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// InitializeServices builds the player cache and loads the item catalog.
// It registers the player cache gauge, so call it once per process.
func InitializeServices(cfg *config.Config) (*Services, error) {
	players := player.NewRegistry(cfg.PlayerCacheSize, cfg.PlayerCacheTTL)
	metrics.RegisterPlayerCache(players.Len)

	cat, err := catalog.NewService(item.NewLoader(), cfg.ItemsPath, players)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgServicesInitialized,
		"items", len(cat.Names()),
		"player_cache_size", cfg.PlayerCacheSize,
		"player_cache_ttl", cfg.PlayerCacheTTL)

	services := &Services{Players: players, Catalog: cat}
	if cfg.CatalogReloadInterval > 0 {
		services.Pool = worker.NewPool(ReloadWorkers, ReloadQueueSize)
		services.Pool.Start()
		services.Scheduler = scheduler.New(services.Pool)
		services.Scheduler.Schedule(cfg.CatalogReloadInterval, catalog.NewReloadJob(cat))
		slog.Info(LogMsgReloadScheduled, "interval", cfg.CatalogReloadInterval)
	}

	return services, nil
}
