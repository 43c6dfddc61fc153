package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationView struct {
	ID                  uuid.UUID                    `json:"id"`
	UserID              uuid.UUID                    `json:"userId"`
	ServiceDetailTypeID int64                        `json:"serviceDetailTypeId"`
	Address             string                       `json:"address"`
	AddressDetail       string                       `json:"addressDetail"`
	ManagerUUID         string                       `json:"managerUuId"`
	HousingType         string                       `json:"housingType"`
	LifeCleaningRoomIdx int                          `json:"lifeCleaningRoomIdx"`
	HousingInformation  string                       `json:"housingInformation"`
	ReservationDate     string                       `json:"reservationDate"`
	StartTime           string                       `json:"startTime"`
	EndTime             string                       `json:"endTime"`
	Pet                 string                       `json:"pet"`
	SpecialRequest      string                       `json:"specialRequest"`
	TotalPrice          int64                        `json:"totalPrice"`
	Status              string                       `json:"status"`
	ServiceOptions      []reservation.SelectedOption `json:"serviceOptions"`
	CreatedAt           time.Time                    `json:"createdAt"`
}

type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	Address         string    `json:"address"`
	ReservationDate string    `json:"reservationDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	ManagerUUID     string    `json:"managerUuId"`
	TotalPrice      int64     `json:"totalPrice"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

// GetByID reports another user's reservation as not found.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if view.UserID != actorID {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	// one extra row tells us whether another page exists
	fetch := int32(limit + 1)

	var (
		items []*ReservationListItem
		err   error
	)
	if cursor == nil || cursor.After == "" {
		items, err = q.repo.FindByUserFirstPage(ctx, userID, fetch)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(cursor.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		items, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(items) <= limit {
		return items, nil, nil
	}
	items = items[:limit]
	last := items[len(items)-1]
	return items, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
