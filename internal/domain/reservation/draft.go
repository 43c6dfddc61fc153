package reservation

import (
	"encoding/json"
	"strings"

	"homeclean-booking/internal/domain/catalog"
)

const NoRoomTier = -1

// Draft is the reservation being composed by a wizard. EndTime is derived and
// only ever written by RecomputeDerived.
type Draft struct {
	ServiceType        string            `json:"serviceType"`
	ServiceDetailType  string            `json:"serviceDetailType"`
	Address            string            `json:"address"`
	AddressDetail      string            `json:"addressDetail"`
	HousingType        string            `json:"housingType"`
	ReservationDate    string            `json:"reservationDate"`
	StartTime          string            `json:"startTime"`
	EndTime            string            `json:"endTime"`
	Pet                string            `json:"pet"`
	ManagerID          string            `json:"managerId"`
	ChooseManager      bool              `json:"chooseManager"`
	RoomTierIndex      int               `json:"roomTierIndex"`
	SelectedOptions    OptionSelection   `json:"selectedOptions"`
	HousingInformation string            `json:"housingInformation"`
	SpecialRequest     string            `json:"specialRequest"`
	ManagerInfo        *ManagerCandidate `json:"managerInfo"`
}

// DraftPatch is a partial update; nil fields are left untouched.
type DraftPatch struct {
	ServiceType        *string
	ServiceDetailType  *string
	Address            *string
	AddressDetail      *string
	HousingType        *string
	ReservationDate    *string
	StartTime          *string
	Pet                *string
	ChooseManager      *bool
	RoomTierIndex      *int
	HousingInformation *string
	SpecialRequest     *string
}

func NewDraft(cat *catalog.Catalog, defaultServiceType string) Draft {
	d := Draft{
		ServiceType:     defaultServiceType,
		RoomTierIndex:   NoRoomTier,
		SelectedOptions: NewOptionSelection(),
	}
	if len(cat.HousingTypes) > 0 {
		d.HousingType = cat.HousingTypes[0].Code
	}
	if dt, ok := cat.DefaultDetailType(defaultServiceType); ok {
		d.ServiceDetailType = dt.Code
		if dt.Tiered {
			d.RoomTierIndex = 0
		}
	}
	return d
}

// Apply validates and applies p. The manager assignment is dropped whenever
// address, date, start time or room tier change, since availability may no
// longer hold; availabilityChanged reports that case. Callers must run
// RecomputeDerived afterwards.
func (d *Draft) Apply(p DraftPatch, cat *catalog.Catalog) (availabilityChanged bool, err error) {
	next := *d

	if p.ServiceType != nil {
		next.ServiceType = strings.TrimSpace(*p.ServiceType)
	}
	if p.ServiceDetailType != nil {
		next.ServiceDetailType = strings.TrimSpace(*p.ServiceDetailType)
	}
	if p.ServiceType != nil || p.ServiceDetailType != nil {
		dt, ok := cat.DetailType(next.ServiceType, next.ServiceDetailType)
		if !ok {
			return false, newDraftError("serviceDetailType", "unknown service detail type")
		}
		switch {
		case !dt.Tiered:
			next.RoomTierIndex = NoRoomTier
		case next.RoomTierIndex == NoRoomTier:
			next.RoomTierIndex = 0
		}
	}
	if p.Address != nil {
		next.Address = *p.Address
	}
	if p.AddressDetail != nil {
		next.AddressDetail = *p.AddressDetail
	}
	if p.HousingType != nil {
		if !cat.HasHousingType(*p.HousingType) {
			return false, newDraftError("housingType", "unknown housing type")
		}
		next.HousingType = *p.HousingType
	}
	if p.ReservationDate != nil {
		v := strings.TrimSpace(*p.ReservationDate)
		if v != "" {
			if _, err := ParseDate(v, nil); err != nil {
				return false, newDraftError("reservationDate", "date must be YYYY-MM-DD")
			}
		}
		next.ReservationDate = v
	}
	if p.StartTime != nil {
		v := strings.TrimSpace(*p.StartTime)
		if v != "" {
			if _, err := ParseTimeOfDay(v); err != nil {
				return false, newDraftError("startTime", "time must be HH:mm")
			}
		}
		next.StartTime = v
	}
	if p.Pet != nil {
		next.Pet = *p.Pet
	}
	if p.ChooseManager != nil {
		next.ChooseManager = *p.ChooseManager
	}
	if p.RoomTierIndex != nil {
		if err := next.checkTier(*p.RoomTierIndex, cat); err != nil {
			return false, err
		}
		next.RoomTierIndex = *p.RoomTierIndex
	}
	if p.HousingInformation != nil {
		next.HousingInformation = *p.HousingInformation
	}
	if p.SpecialRequest != nil {
		next.SpecialRequest = *p.SpecialRequest
	}

	availabilityChanged = next.Address != d.Address ||
		next.ReservationDate != d.ReservationDate ||
		next.StartTime != d.StartTime ||
		next.RoomTierIndex != d.RoomTierIndex
	if availabilityChanged {
		next.ClearManager()
	}

	*d = next
	return availabilityChanged, nil
}

func (d *Draft) checkTier(index int, cat *catalog.Catalog) error {
	dt, ok := cat.DetailType(d.ServiceType, d.ServiceDetailType)
	if !ok || !dt.Tiered {
		if index != NoRoomTier {
			return newDraftError("roomTierIndex", "service detail type is not priced by room size")
		}
		return nil
	}
	if _, ok := cat.Tier(index); !ok {
		return newDraftError("roomTierIndex", "room size tier out of range")
	}
	return nil
}

func (d *Draft) ClearManager() {
	d.ManagerID = ""
	d.ManagerInfo = nil
}

func (d *Draft) AssignManager(m ManagerCandidate) {
	d.ManagerID = m.UUID
	info := m
	d.ManagerInfo = &info
}

// Tier returns the room-size tier that prices this draft, or nil when the
// detail type is not tiered or no tier is selected.
func (d *Draft) Tier(cat *catalog.Catalog) *catalog.RoomSizeTier {
	dt, ok := cat.DetailType(d.ServiceType, d.ServiceDetailType)
	if !ok || !dt.Tiered {
		return nil
	}
	t, ok := cat.Tier(d.RoomTierIndex)
	if !ok {
		return nil
	}
	return &t
}

func (d *Draft) Quote(calc PriceCalculator, cat *catalog.Catalog) Quote {
	return calc.Calculate(d.Tier(cat), d.SelectedOptions)
}

// RecomputeDerived must follow every change to start time, options, option
// counts or room tier.
func (d *Draft) RecomputeDerived(calc PriceCalculator, cat *catalog.Catalog) Quote {
	q := d.Quote(calc, cat)
	d.EndTime = EndTimeFor(d.StartTime, q.TotalMinutes)
	return q
}

func (s OptionSelection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

func (s *OptionSelection) UnmarshalJSON(data []byte) error {
	var items []SelectedOption
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = RestoreOptionSelection(items)
	return nil
}
