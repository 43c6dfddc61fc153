package repository

import (
	"context"
	"time"

	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/infra/db"
	"homeclean-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, reservation_id, expires_at)
VALUES ($1, $2, $3, $4, $5)`

	findIdempotencyKeySQL = `
SELECT reservation_id
FROM idempotency_keys
WHERE key = $1 AND user_id = $2 AND expires_at > $3`

	deleteExpiredIdempotencyKeysSQL = `DELETE FROM idempotency_keys WHERE expires_at <= $1`
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(pool db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: pool}
}

// Insert fails with KindDuplicateKey when (key, userID) was already used.
func (r *IdempotencyRepository) Insert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint string, reservationID uuid.UUID, expiresAt time.Time) error {
	_, err := tx.Exec(ctx, insertIdempotencyKeySQL, key, userID, endpoint, reservationID, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		if db.PgErrorCode(err) == db.CodeUniqueViolation {
			return infra.WrapRepoErr("idempotency key already used", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) FindReservationID(ctx context.Context, key, userID uuid.UUID, now time.Time) (uuid.UUID, error) {
	var reservationID uuid.UUID
	err := r.db.QueryRow(ctx, findIdempotencyKeySQL, key, userID, pgconv.TimeToPgtype(now)).Scan(&reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}
	return reservationID, nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysSQL, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
