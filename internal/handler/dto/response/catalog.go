package response

import (
	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type HousingTypeResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type ServiceOptionResponse struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	PriceAdd       int64  `json:"priceAdd"`
	TimeAddMinutes int    `json:"timeAddMinutes"`
	Countable      bool   `json:"countable"`
}

type RoomSizeTierResponse struct {
	Label          string `json:"label"`
	BaseTimeHours  int    `json:"baseTimeHours"`
	EstimatedPrice int64  `json:"estimatedPrice"`
}

type ServiceDetailTypeResponse struct {
	ID          int64  `json:"id"`
	ServiceType string `json:"serviceType"`
	Code        string `json:"code"`
	Label       string `json:"label"`
	Tiered      bool   `json:"tiered"`
}

type CatalogResponse struct {
	HousingTypes          []HousingTypeResponse       `json:"housingTypes"`
	ServiceOptions        []ServiceOptionResponse     `json:"serviceOptions"`
	RoomSizesLifeCleaning []RoomSizeTierResponse      `json:"roomSizesLifeCleaning"`
	ServiceDetailTypes    []ServiceDetailTypeResponse `json:"serviceDetailTypes"`
	MaxCountableItems     int                         `json:"maxCountableItems"`
}

func FromCatalog(c *catalog.Catalog) (*CatalogResponse, error) {
	var res CatalogResponse
	if err := copier.CopyWithOption(&res, c, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "copy catalog")
	}
	return &res, nil
}

func FromQuote(q reservation.Quote) QuoteResponse {
	return QuoteResponse{TotalMinutes: q.TotalMinutes, TotalPrice: q.TotalPrice}
}
