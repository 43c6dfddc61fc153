//go:build unit || e2e

package builder

import (
	"homeclean-booking/internal/domain/catalog"
)

type CatalogBuilder struct {
	Catalog catalog.Catalog
}

// NewCatalogBuilder starts from a small catalog shaped like the embedded
// default: one tiered and one flat detail type, four tiers, three options.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{Catalog: catalog.Catalog{
		HousingTypes: []catalog.HousingType{
			{Code: "APARTMENT", Label: "아파트"},
			{Code: "VILLA", Label: "빌라"},
		},
		ServiceDetailTypes: []catalog.ServiceDetailType{
			{ID: 1, ServiceType: "CLEANING", Code: "LIFE_CLEANING", Label: "생활청소", Tiered: true},
			{ID: 2, ServiceType: "CLEANING", Code: "MOVE_IN_CLEANING", Label: "입주청소", Tiered: false},
		},
		RoomSizesLifeCleaning: []catalog.RoomSizeTier{
			{Label: "10평 미만", BaseTimeHours: 2, EstimatedPrice: 40000},
			{Label: "10평 ~ 20평", BaseTimeHours: 3, EstimatedPrice: 60000},
			{Label: "20평 ~ 30평", BaseTimeHours: 4, EstimatedPrice: 80000},
			{Label: "30평 이상", BaseTimeHours: 5, EstimatedPrice: 100000},
		},
		ServiceOptions: []catalog.ServiceOption{
			{ID: "FRIDGE", Label: "냉장고 청소", PriceAdd: 5000, TimeAddMinutes: 30},
			{ID: "WINDOW", Label: "창문 청소", PriceAdd: 3000, TimeAddMinutes: 15, Countable: true},
			{ID: "BATHROOM", Label: "욕실 추가", PriceAdd: 10000, TimeAddMinutes: 40, Countable: true},
		},
		MaxCountableItems: 5,
	}}
}

func (b *CatalogBuilder) With(mutate func(*CatalogBuilder)) *CatalogBuilder {
	mutate(b)
	return b
}

func (b *CatalogBuilder) Build() *catalog.Catalog {
	c := b.Catalog
	return &c
}
