//go:build unit || e2e

package builder

import (
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Address         string
	ReservationDate string
	StartTime       string
	EndTime         string
	ManagerUUID     string
	TotalPrice      int64
	Status          string
	Options         []reservation.SelectedOption
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Address:         "서울시 강남구 테헤란로 1",
		ReservationDate: "2030-03-01",
		StartTime:       "09:00",
		EndTime:         "13:00",
		ManagerUUID:     uuid.NewString(),
		TotalPrice:      71000,
		Status:          "requested",
		Options:         []reservation.SelectedOption{{ID: "FRIDGE", Count: 1}, {ID: "WINDOW", Count: 2}},
		CreatedAt:       time.Now(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  b.ID,
		UserID:              b.UserID,
		ServiceDetailTypeID: 1,
		Address:             b.Address,
		AddressDetail:       "101동 1001호",
		ManagerUUID:         b.ManagerUUID,
		HousingType:         "APARTMENT",
		LifeCleaningRoomIdx: 1,
		ReservationDate:     b.ReservationDate,
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		TotalPrice:          b.TotalPrice,
		Status:              b.Status,
		ServiceOptions:      b.Options,
		CreatedAt:           b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:              b.ID,
		Address:         b.Address,
		ReservationDate: b.ReservationDate,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		ManagerUUID:     b.ManagerUUID,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}
