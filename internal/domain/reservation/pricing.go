package reservation

import "homeclean-booking/internal/domain/catalog"

type Quote struct {
	TotalMinutes int   `json:"totalMinutes"`
	TotalPrice   int64 `json:"totalPrice"`
}

type PriceCalculator interface {
	// Calculate returns the zero quote when tier is nil.
	Calculate(tier *catalog.RoomSizeTier, sel OptionSelection) Quote
}

type DefaultPriceCalculator struct {
	catalog *catalog.Catalog
}

func NewDefaultPriceCalculator(c *catalog.Catalog) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{catalog: c}
}

func (pc *DefaultPriceCalculator) Calculate(tier *catalog.RoomSizeTier, sel OptionSelection) Quote {
	if tier == nil {
		return Quote{}
	}

	q := Quote{
		TotalMinutes: tier.BaseTimeHours * 60,
		TotalPrice:   tier.EstimatedPrice,
	}
	for _, id := range sel.IDs() {
		opt, ok := pc.catalog.Option(id)
		if !ok {
			continue
		}
		count := pc.effectiveCount(opt, sel.Count(id))
		q.TotalMinutes += opt.TimeAddMinutes * count
		q.TotalPrice += opt.PriceAdd * int64(count)
	}
	return q
}

func (pc *DefaultPriceCalculator) effectiveCount(opt catalog.ServiceOption, stored int) int {
	if !opt.Countable {
		return 1
	}
	return min(max(stored, 1), pc.catalog.MaxCountableItems)
}
