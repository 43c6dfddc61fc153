package sessionstore

import (
	"context"
	"errors"
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking:wizard:"

type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*reservation.Wizard, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("wizard session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read wizard session", err, infra.KindUnavailable)
	}
	return decode(data)
}

// Save refreshes the TTL, so an active wizard never expires mid-flow.
func (s *RedisStore) Save(ctx context.Context, w *reservation.Wizard) error {
	data, err := encode(w)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(w.ID()), data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write wizard session", err, infra.KindUnavailable)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete wizard session", err, infra.KindUnavailable)
	}
	return nil
}
