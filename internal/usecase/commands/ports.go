package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"
	"time"

	"homeclean-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// SessionStore holds in-progress wizards. Get returns an infra.RepositoryError
// of kind KindNotFound for unknown or expired ids.
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*reservation.Wizard, error)
	Save(ctx context.Context, w *reservation.Wizard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ManagerFinder interface {
	FindAvailable(ctx context.Context, q reservation.ManagerQuery) ([]reservation.ManagerCandidate, error)
}

type SubmitRequest struct {
	UserID         uuid.UUID
	WizardID       uuid.UUID
	IdempotencyKey uuid.UUID
	Payload        reservation.CreateReservationPayload
}

type SubmitResult struct {
	ReservationID uuid.UUID
	IsReplayed    bool
}

// ReservationGateway persists submitted reservations. Create is idempotent on
// (UserID, IdempotencyKey).
type ReservationGateway interface {
	Create(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	FindByIdempotencyKey(ctx context.Context, userID, key uuid.UUID) (uuid.UUID, bool, error)
}

const NotificationReservationCreated = "reservation_created"

type Notification struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservationId"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, n Notification) error
}
