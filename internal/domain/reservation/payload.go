package reservation

import (
	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/pkg/errs"
)

var ErrServiceDetailTypeNotFound = errs.New("service detail type not found in catalog")

// CreateReservationPayload is what gets persisted when a wizard is submitted.
type CreateReservationPayload struct {
	ServiceDetailTypeID int64            `json:"serviceDetailTypeId"`
	Address             string           `json:"address"`
	AddressDetail       string           `json:"addressDetail"`
	ManagerUUID         string           `json:"managerUuId"`
	HousingType         string           `json:"housingType"`
	LifeCleaningRoomIdx int              `json:"lifeCleaningRoomIdx"`
	HousingInformation  string           `json:"housingInformation"`
	ReservationDate     string           `json:"reservationDate"`
	StartTime           string           `json:"startTime"`
	EndTime             string           `json:"endTime"`
	ServiceOptions      []SelectedOption `json:"serviceOptions"`
	Pet                 string           `json:"pet"`
	SpecialRequest      string           `json:"specialRequest"`
	TotalPrice          int64            `json:"totalPrice"`
}

func BuildPayload(d Draft, calc PriceCalculator, cat *catalog.Catalog) (CreateReservationPayload, error) {
	dt, ok := cat.DetailType(d.ServiceType, d.ServiceDetailType)
	if !ok {
		return CreateReservationPayload{}, ErrServiceDetailTypeNotFound
	}

	q := d.Quote(calc, cat)
	return CreateReservationPayload{
		ServiceDetailTypeID: dt.ID,
		Address:             d.Address,
		AddressDetail:       d.AddressDetail,
		ManagerUUID:         d.ManagerID,
		HousingType:         d.HousingType,
		LifeCleaningRoomIdx: d.RoomTierIndex,
		HousingInformation:  d.HousingInformation,
		ReservationDate:     d.ReservationDate,
		StartTime:           d.StartTime,
		EndTime:             EndTimeFor(d.StartTime, q.TotalMinutes),
		ServiceOptions:      d.SelectedOptions.Items(),
		Pet:                 d.Pet,
		SpecialRequest:      d.SpecialRequest,
		TotalPrice:          q.TotalPrice,
	}, nil
}
