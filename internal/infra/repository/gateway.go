package repository

import (
	"context"
	"encoding/json"
	"time"

	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/infra/db"
	"homeclean-booking/internal/pkg/clock"
	"homeclean-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	submitEndpoint       = "POST /api/wizards/:id/submit"
	idempotencyKeyTTL    = 24 * time.Hour
	notificationKindPush = "push"
	submitMaxTxRetries   = 3
)

// ReservationGateway writes a submitted wizard as one transaction: the
// reservation, its options, the idempotency key and a notification job.
type ReservationGateway struct {
	pool          *pgxpool.Pool
	reservations  *ReservationRepository
	idempotency   *IdempotencyRepository
	notifications *NotificationRepository
	clock         clock.Clock
}

func NewReservationGateway(
	pool *pgxpool.Pool,
	reservations *ReservationRepository,
	idempotency *IdempotencyRepository,
	notifications *NotificationRepository,
	clk clock.Clock,
) *ReservationGateway {
	return &ReservationGateway{
		pool:          pool,
		reservations:  reservations,
		idempotency:   idempotency,
		notifications: notifications,
		clock:         clk,
	}
}

func (g *ReservationGateway) Create(ctx context.Context, req commands.SubmitRequest) (*commands.SubmitResult, error) {
	now := g.clock.Now()

	id, err := db.RunInTxWithRetry(ctx, g.pool, submitMaxTxRetries, func(tx pgx.Tx) (uuid.UUID, error) {
		id, err := g.reservations.Create(ctx, tx, req.UserID, req.WizardID, req.Payload)
		if err != nil {
			return uuid.Nil, err
		}

		if err := g.idempotency.Insert(ctx, tx, req.IdempotencyKey, req.UserID, submitEndpoint, id, now.Add(idempotencyKeyTTL)); err != nil {
			return uuid.Nil, err
		}

		payload, err := json.Marshal(map[string]any{
			"reservation_id": id,
			"user_id":        req.UserID,
			"type":           commands.NotificationReservationCreated,
		})
		if err != nil {
			return uuid.Nil, err
		}
		if err := g.notifications.CreateJob(ctx, tx, notificationKindPush, commands.NotificationReservationCreated, payload, now); err != nil {
			return uuid.Nil, err
		}

		return id, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// lost the race to a concurrent submit with the same key
			existing, findErr := g.idempotency.FindReservationID(ctx, req.IdempotencyKey, req.UserID, now)
			if findErr != nil {
				return nil, findErr
			}
			return &commands.SubmitResult{ReservationID: existing, IsReplayed: true}, nil
		}
		return nil, err
	}

	return &commands.SubmitResult{ReservationID: id}, nil
}

func (g *ReservationGateway) FindByIdempotencyKey(ctx context.Context, userID, key uuid.UUID) (uuid.UUID, bool, error) {
	id, err := g.idempotency.FindReservationID(ctx, key, userID, g.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	return id, true, nil
}
