package request

import (
	"strings"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/usecase/queries"
)

// DraftFields carries a partial draft. Absent keys leave the draft untouched.
type DraftFields struct {
	ServiceType        *string `json:"serviceType,omitempty" binding:"omitempty,max=50"`
	ServiceDetailType  *string `json:"serviceDetailType,omitempty" binding:"omitempty,max=50"`
	Address            *string `json:"address,omitempty" binding:"omitempty,max=255"`
	AddressDetail      *string `json:"addressDetail,omitempty" binding:"omitempty,max=255"`
	HousingType        *string `json:"housingType,omitempty" binding:"omitempty,max=50"`
	ReservationDate    *string `json:"reservationDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StartTime          *string `json:"startTime,omitempty" binding:"omitempty,datetime=15:04"`
	Pet                *string `json:"pet,omitempty" binding:"omitempty,max=100"`
	ChooseManager      *bool   `json:"chooseManager,omitempty"`
	RoomTierIndex      *int    `json:"roomTierIndex,omitempty" binding:"omitempty,min=0"`
	HousingInformation *string `json:"housingInformation,omitempty" binding:"omitempty,max=1000"`
	SpecialRequest     *string `json:"specialRequest,omitempty" binding:"omitempty,max=1000"`
}

func (f DraftFields) ToPatch() reservation.DraftPatch {
	return reservation.DraftPatch{
		ServiceType:        trimmed(f.ServiceType),
		ServiceDetailType:  trimmed(f.ServiceDetailType),
		Address:            f.Address,
		AddressDetail:      f.AddressDetail,
		HousingType:        trimmed(f.HousingType),
		ReservationDate:    trimmed(f.ReservationDate),
		StartTime:          trimmed(f.StartTime),
		Pet:                f.Pet,
		ChooseManager:      f.ChooseManager,
		RoomTierIndex:      f.RoomTierIndex,
		HousingInformation: f.HousingInformation,
		SpecialRequest:     f.SpecialRequest,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

type StartWizardRequest struct {
	InitialData DraftFields `json:"initialData"`
}

type SetOptionCountRequest struct {
	Count *int `json:"count" binding:"required"`
}

type QuoteOption struct {
	ID    string `json:"id" binding:"required"`
	Count int    `json:"count" binding:"omitempty,min=1"`
}

type QuoteRequest struct {
	ServiceType       string        `json:"serviceType" binding:"required"`
	ServiceDetailType string        `json:"serviceDetailType" binding:"required"`
	RoomTierIndex     *int          `json:"roomTierIndex"`
	Options           []QuoteOption `json:"options" binding:"omitempty,dive"`
}

func (r QuoteRequest) ToQuery() queries.QuoteRequest {
	idx := reservation.NoRoomTier
	if r.RoomTierIndex != nil {
		idx = *r.RoomTierIndex
	}
	opts := make([]reservation.SelectedOption, len(r.Options))
	for i, o := range r.Options {
		opts[i] = reservation.SelectedOption{ID: o.ID, Count: max(o.Count, 1)}
	}
	return queries.QuoteRequest{
		ServiceType:       r.ServiceType,
		ServiceDetailType: r.ServiceDetailType,
		RoomTierIndex:     idx,
		Options:           opts,
	}
}

type ListReservationsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListReservationsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
