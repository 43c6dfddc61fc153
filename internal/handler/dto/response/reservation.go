package response

import (
	"time"

	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID                  uuid.UUID                `json:"id"`
	ServiceDetailTypeID int64                    `json:"serviceDetailTypeId"`
	Address             string                   `json:"address"`
	AddressDetail       string                   `json:"addressDetail"`
	ManagerUUID         string                   `json:"managerUuId"`
	HousingType         string                   `json:"housingType"`
	LifeCleaningRoomIdx int                      `json:"lifeCleaningRoomIdx"`
	HousingInformation  string                   `json:"housingInformation"`
	ReservationDate     string                   `json:"reservationDate"`
	StartTime           string                   `json:"startTime"`
	EndTime             string                   `json:"endTime"`
	Pet                 string                   `json:"pet"`
	SpecialRequest      string                   `json:"specialRequest"`
	TotalPrice          int64                    `json:"totalPrice"`
	Status              string                   `json:"status"`
	ServiceOptions      []SelectedOptionResponse `json:"serviceOptions"`
	CreatedAt           time.Time                `json:"createdAt"`
}

type ReservationListResponse struct {
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

type ReservationPageResponse struct {
	Items      []*ReservationListResponse `json:"items"`
	NextCursor *queries.Cursor            `json:"nextCursor,omitempty"`
}

func FromReservationView(rm *queries.ReservationView) (*ReservationResponse, error) {
	res := &ReservationResponse{}
	if err := copier.CopyWithOption(res, rm, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "copy reservation")
	}
	if res.ServiceOptions == nil {
		res.ServiceOptions = []SelectedOptionResponse{}
	}
	return res, nil
}

func FromReservationListItem(rm *queries.ReservationListItem) (*ReservationListResponse, error) {
	res := &ReservationListResponse{}
	if err := copier.Copy(res, rm); err != nil {
		return nil, errs.Wrap(err, "copy reservation list item")
	}
	return res, nil
}

func FromReservationPage(items []*queries.ReservationListItem, next *queries.Cursor) (*ReservationPageResponse, error) {
	res := &ReservationPageResponse{Items: make([]*ReservationListResponse, len(items)), NextCursor: next}
	for i, rm := range items {
		item, err := FromReservationListItem(rm)
		if err != nil {
			return nil, err
		}
		res.Items[i] = item
	}
	return res, nil
}
