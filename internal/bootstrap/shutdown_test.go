package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/player"
	"github.com/osse101/itemforge/internal/scheduler"
	"github.com/osse101/itemforge/internal/testing/leaktest"
	"github.com/osse101/itemforge/internal/worker"
)

func TestGracefulShutdown_ClearsPlayers(t *testing.T) {
	players := player.NewRegistry(4, 0)
	players.Remember(domain.OfflinePlayer{ID: uuid.New(), Name: "Notch"})
	assert.Equal(t, 1, players.Len())

	GracefulShutdown(context.Background(), ShutdownComponents{Players: players})

	assert.Zero(t, players.Len())
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestGracefulShutdown_StopsWorkers(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(time.Hour, nil)

	GracefulShutdown(context.Background(), ShutdownComponents{Scheduler: sched, Pool: pool})

	checker.Check(0)
}
