package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/pkg/errs"
)

var ErrInvalidQuoteRequest = errs.New("invalid quote request")

type QuoteRequest struct {
	ServiceType       string
	ServiceDetailType string
	RoomTierIndex     int
	Options           []reservation.SelectedOption
}

type CatalogQueries interface {
	Catalog() *catalog.Catalog
	Quote(req QuoteRequest) (reservation.Quote, error)
}

type catalogQueriesImpl struct {
	catalog *catalog.Catalog
	calc    reservation.PriceCalculator
}

func NewCatalogQueries(cat *catalog.Catalog, calc reservation.PriceCalculator) CatalogQueries {
	return &catalogQueriesImpl{catalog: cat, calc: calc}
}

func (q *catalogQueriesImpl) Catalog() *catalog.Catalog {
	return q.catalog
}

// Quote prices an ad-hoc selection without a wizard session.
func (q *catalogQueriesImpl) Quote(req QuoteRequest) (reservation.Quote, error) {
	dt, ok := q.catalog.DetailType(req.ServiceType, req.ServiceDetailType)
	if !ok {
		return reservation.Quote{}, errs.Wrap(ErrInvalidQuoteRequest, "unknown service detail type")
	}
	for _, o := range req.Options {
		if _, ok := q.catalog.Option(o.ID); !ok {
			return reservation.Quote{}, errs.Wrapf(ErrInvalidQuoteRequest, "unknown option %q", o.ID)
		}
	}

	var tier *catalog.RoomSizeTier
	if dt.Tiered {
		t, ok := q.catalog.Tier(req.RoomTierIndex)
		if !ok {
			return reservation.Quote{}, errs.Wrap(ErrInvalidQuoteRequest, "room size tier out of range")
		}
		tier = &t
	}
	return q.calc.Calculate(tier, reservation.RestoreOptionSelection(req.Options)), nil
}
