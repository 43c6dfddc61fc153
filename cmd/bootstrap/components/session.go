package components

import (
	"log/slog"

	"homeclean-booking/internal/infra/sessionstore"
	"homeclean-booking/internal/pkg/clock"
	"homeclean-booking/internal/pkg/config"
	"homeclean-booking/internal/usecase/commands"
	"homeclean-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
		func(s commands.SessionStore) queries.WizardReader {
			return s
		},
	),
)

type SessionStoreResult struct {
	fx.Out

	Store commands.SessionStore
	// nil unless the in-memory store is selected
	Memory *sessionstore.MemoryStore
}

func NewSessionStore(cfg config.Config, client redis.UniversalClient, clk clock.Clock) SessionStoreResult {
	if client != nil {
		slog.Info("wizard sessions backed by redis", "ttl", cfg.Session.TTL)
		return SessionStoreResult{Store: sessionstore.NewRedisStore(client, cfg.Session.TTL)}
	}

	slog.Info("wizard sessions kept in memory", "ttl", cfg.Session.TTL)
	mem := sessionstore.NewMemoryStore(cfg.Session.TTL, clk)
	return SessionStoreResult{Store: mem, Memory: mem}
}
