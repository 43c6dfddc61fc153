package readstore

import (
	"context"
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/infra/db"
	"homeclean-booking/internal/pkg/pgconv"
	"homeclean-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	getReservationByIDSQL = `
SELECT id, user_id, service_detail_type_id, address, address_detail, manager_uuid,
       housing_type, life_cleaning_room_idx, housing_information,
       to_char(reservation_date, 'YYYY-MM-DD'), start_time, end_time,
       pet, special_request, total_price, status, created_at
FROM reservations
WHERE id = $1`

	getReservationOptionsSQL = `
SELECT option_id, count
FROM reservation_options
WHERE reservation_id = $1
ORDER BY position`

	listColumns = `
SELECT id, address, to_char(reservation_date, 'YYYY-MM-DD'), start_time, end_time,
       manager_uuid, total_price, status, created_at
FROM reservations`

	getReservationsByUserFirstPageSQL = listColumns + `
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

	getReservationsByUserKeysetSQL = listColumns + `
WHERE user_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(pool db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: pool}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view        queries.ReservationView
		managerUUID pgtype.UUID
		housingInfo pgtype.Text
		pet         pgtype.Text
		special     pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getReservationByIDSQL, id).Scan(
		&view.ID,
		&view.UserID,
		&view.ServiceDetailTypeID,
		&view.Address,
		&view.AddressDetail,
		&managerUUID,
		&view.HousingType,
		&view.LifeCleaningRoomIdx,
		&housingInfo,
		&view.ReservationDate,
		&view.StartTime,
		&view.EndTime,
		&pet,
		&special,
		&view.TotalPrice,
		&view.Status,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.ManagerUUID = pgconv.UUIDOrEmpty(managerUUID)
	view.HousingInformation = pgconv.TextOrEmpty(housingInfo)
	view.Pet = pgconv.TextOrEmpty(pet)
	view.SpecialRequest = pgconv.TextOrEmpty(special)
	view.CreatedAt = createdAt.Time

	options, err := r.findOptions(ctx, id)
	if err != nil {
		return nil, err
	}
	view.ServiceOptions = options

	return &view, nil
}

func (r *ReservationReadStore) findOptions(ctx context.Context, reservationID uuid.UUID) ([]reservation.SelectedOption, error) {
	rows, err := r.db.Query(ctx, getReservationOptionsSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservation options", err)
	}

	options, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (reservation.SelectedOption, error) {
		var o reservation.SelectedOption
		err := row.Scan(&o.ID, &o.Count)
		return o, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservation options", err)
	}
	return options, nil
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, getReservationsByUserFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}
	return collectListItems(rows)
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, getReservationsByUserKeysetSQL, userID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}
	return collectListItems(rows)
}

func collectListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReservationListItem, error) {
		var (
			item        queries.ReservationListItem
			managerUUID pgtype.UUID
			createdAt   pgtype.Timestamptz
		)
		err := row.Scan(
			&item.ID,
			&item.Address,
			&item.ReservationDate,
			&item.StartTime,
			&item.EndTime,
			&managerUUID,
			&item.TotalPrice,
			&item.Status,
			&createdAt,
		)
		item.ManagerUUID = pgconv.UUIDOrEmpty(managerUUID)
		item.CreatedAt = createdAt.Time
		return &item, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservation list", err)
	}
	return items, nil
}
