package components

import (
	"context"
	"log/slog"
	"time"

	"homeclean-booking/internal/handler/middleware"
	"homeclean-booking/internal/infra/repository"
	"homeclean-booking/internal/infra/sessionstore"
	"homeclean-booking/internal/pkg/clock"

	"go.uber.org/fx"
)

const (
	sessionSweepInterval     = time.Minute
	limiterPruneInterval     = 5 * time.Minute
	idempotencySweepInterval = time.Hour
)

var MaintenanceModule = fx.Module("maintenance",
	fx.Invoke(
		registerSessionSweep,
		registerLimiterPrune,
		registerIdempotencySweep,
	),
)

type MaintenanceParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Memory    *sessionstore.MemoryStore `optional:"true"`
}

func registerSessionSweep(p MaintenanceParams) {
	if p.Memory == nil {
		return
	}
	runEvery(p.Lifecycle, "session sweep", sessionSweepInterval, func(context.Context) {
		if n := p.Memory.Sweep(); n > 0 {
			slog.Debug("expired wizard sessions removed", "count", n)
		}
	})
}

func registerLimiterPrune(lc fx.Lifecycle, limiter *middleware.RateLimiter) {
	runEvery(lc, "rate limiter prune", limiterPruneInterval, func(context.Context) {
		limiter.Prune()
	})
}

func registerIdempotencySweep(lc fx.Lifecycle, repo *repository.IdempotencyRepository, clk clock.Clock) {
	runEvery(lc, "idempotency sweep", idempotencySweepInterval, func(ctx context.Context) {
		n, err := repo.DeleteExpired(ctx, clk.Now())
		if err != nil {
			slog.Warn("failed to delete expired idempotency keys", "error", err)
			return
		}
		if n > 0 {
			slog.Info("expired idempotency keys deleted", "count", n)
		}
	})
}

// runEvery runs fn on a ticker between app start and stop.
func runEvery(lc fx.Lifecycle, name string, interval time.Duration, fn func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						fn(ctx)
					}
				}
			}()
			slog.Debug("maintenance job scheduled", "job", name, "interval", interval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
