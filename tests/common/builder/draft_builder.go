//go:build unit || e2e

package builder

import (
	"time"

	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/domain/reservation"
	reqdto "homeclean-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type DraftBuilder struct {
	ServiceType        string
	ServiceDetailType  string
	Address            string
	AddressDetail      string
	HousingType        string
	ReservationDate    string
	StartTime          string
	Pet                string
	ChooseManager      bool
	RoomTierIndex      int
	Options            []reservation.SelectedOption
	Manager            *reservation.ManagerCandidate
	HousingInformation string
	SpecialRequest     string
}

// NewDraftBuilder returns a draft that passes every step's validation.
func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		ServiceType:        "CLEANING",
		ServiceDetailType:  "LIFE_CLEANING",
		Address:            "서울시 강남구 테헤란로 1",
		AddressDetail:      "101동 1001호",
		HousingType:        "APARTMENT",
		ReservationDate:    time.Now().AddDate(0, 0, 7).Format(reservation.DateLayout),
		StartTime:          "09:00",
		Pet:                "",
		ChooseManager:      false,
		RoomTierIndex:      1,
		HousingInformation: "엘리베이터 있음",
		SpecialRequest:     "",
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) WithOptions(opts ...reservation.SelectedOption) *DraftBuilder {
	b.Options = opts
	return b
}

func (b *DraftBuilder) WithManager(m reservation.ManagerCandidate) *DraftBuilder {
	b.Manager = &m
	return b
}

// BuildDomain returns the draft with derived fields computed.
func (b *DraftBuilder) BuildDomain(calc reservation.PriceCalculator, cat *catalog.Catalog) reservation.Draft {
	d := reservation.Draft{
		ServiceType:        b.ServiceType,
		ServiceDetailType:  b.ServiceDetailType,
		Address:            b.Address,
		AddressDetail:      b.AddressDetail,
		HousingType:        b.HousingType,
		ReservationDate:    b.ReservationDate,
		StartTime:          b.StartTime,
		Pet:                b.Pet,
		ChooseManager:      b.ChooseManager,
		RoomTierIndex:      b.RoomTierIndex,
		SelectedOptions:    reservation.RestoreOptionSelection(b.Options),
		HousingInformation: b.HousingInformation,
		SpecialRequest:     b.SpecialRequest,
	}
	if b.Manager != nil {
		d.AssignManager(*b.Manager)
	}
	d.RecomputeDerived(calc, cat)
	return d
}

func (b *DraftBuilder) BuildWizard(
	userID uuid.UUID,
	step reservation.Step,
	calc reservation.PriceCalculator,
	cat *catalog.Catalog,
	now time.Time,
) *reservation.Wizard {
	return reservation.ReconstructWizard(uuid.New(), userID, step, b.BuildDomain(calc, cat), nil, false, now, now)
}

func (b *DraftBuilder) BuildPatchDTO() reqdto.DraftFields {
	chooseManager := b.ChooseManager
	tier := b.RoomTierIndex
	return reqdto.DraftFields{
		ServiceType:        &b.ServiceType,
		ServiceDetailType:  &b.ServiceDetailType,
		Address:            &b.Address,
		AddressDetail:      &b.AddressDetail,
		HousingType:        &b.HousingType,
		ReservationDate:    &b.ReservationDate,
		StartTime:          &b.StartTime,
		Pet:                &b.Pet,
		ChooseManager:      &chooseManager,
		RoomTierIndex:      &tier,
		HousingInformation: &b.HousingInformation,
		SpecialRequest:     &b.SpecialRequest,
	}
}

func NewManagerCandidate(name string) reservation.ManagerCandidate {
	return reservation.ManagerCandidate{
		UUID:          uuid.NewString(),
		Name:          name,
		ProfileImage:  "https://cdn.example.com/managers/" + name + ".png",
		AverageRate:   4.8,
		IntroduceText: "꼼꼼하게 청소합니다.",
	}
}
