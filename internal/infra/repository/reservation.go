package repository

import (
	"context"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/infra/db"
	"homeclean-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const insertReservationSQL = `
INSERT INTO reservations (
    user_id, wizard_id, service_detail_type_id, address, address_detail,
    manager_uuid, housing_type, life_cleaning_room_idx, housing_information,
    reservation_date, start_time, end_time, pet, special_request, total_price
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::date, $11, $12, $13, $14, $15)
RETURNING id`

const insertReservationOptionSQL = `
INSERT INTO reservation_options (reservation_id, position, option_id, count)
VALUES ($1, $2, $3, $4)`

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, userID, wizardID uuid.UUID, p reservation.CreateReservationPayload) (uuid.UUID, error) {
	managerUUID, err := pgconv.UUIDStringToPgtype(p.ManagerUUID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("manager uuid is malformed", err, infra.KindCorrupted)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, insertReservationSQL,
		userID,
		wizardID,
		p.ServiceDetailTypeID,
		p.Address,
		p.AddressDetail,
		managerUUID,
		p.HousingType,
		p.LifeCleaningRoomIdx,
		pgconv.TextToPgtype(p.HousingInformation),
		p.ReservationDate,
		p.StartTime,
		p.EndTime,
		pgconv.TextToPgtype(p.Pet),
		pgconv.TextToPgtype(p.SpecialRequest),
		p.TotalPrice,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	if len(p.ServiceOptions) == 0 {
		return id, nil
	}

	batch := &pgx.Batch{}
	for i, opt := range p.ServiceOptions {
		batch.Queue(insertReservationOptionSQL, id, i, opt.ID, max(opt.Count, 1))
	}
	if err := sendBatch(ctx, tx, batch); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation options", err)
	}

	return id, nil
}

type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func sendBatch(ctx context.Context, tx db.DBTX, batch *pgx.Batch) error {
	sender, ok := tx.(batchSender)
	if !ok {
		for _, q := range batch.QueuedQueries {
			if _, err := tx.Exec(ctx, q.SQL, q.Arguments...); err != nil {
				return err
			}
		}
		return nil
	}

	results := sender.SendBatch(ctx, batch)
	for range batch.QueuedQueries {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}
	return results.Close()
}
