package catalog

import (
	"strings"

	"homeclean-booking/internal/pkg/errs"
)

var ErrInvalidCatalog = errs.New("invalid catalog")

type RoomSizeTier struct {
	Label          string `yaml:"label" json:"label"`
	BaseTimeHours  int    `yaml:"baseTimeHours" json:"baseTimeHours"`
	EstimatedPrice int64  `yaml:"estimatedPrice" json:"estimatedPrice"`
}

type ServiceOption struct {
	ID             string `yaml:"id" json:"id"`
	Label          string `yaml:"label" json:"label"`
	PriceAdd       int64  `yaml:"priceAdd" json:"priceAdd"`
	TimeAddMinutes int    `yaml:"timeAddMinutes" json:"timeAddMinutes"`
	Countable      bool   `yaml:"countable" json:"countable"`
}

type HousingType struct {
	Code  string `yaml:"code" json:"code"`
	Label string `yaml:"label" json:"label"`
}

// ServiceDetailType is a bookable variant of a service type. Only tiered
// detail types are priced from the room-size table.
type ServiceDetailType struct {
	ID          int64  `yaml:"id" json:"id"`
	ServiceType string `yaml:"serviceType" json:"serviceType"`
	Code        string `yaml:"code" json:"code"`
	Label       string `yaml:"label" json:"label"`
	Tiered      bool   `yaml:"tiered" json:"tiered"`
}

// Catalog is loaded once at startup and treated as read-only afterwards.
type Catalog struct {
	HousingTypes          []HousingType       `yaml:"housingTypes" json:"housingTypes"`
	ServiceOptions        []ServiceOption     `yaml:"serviceOptions" json:"serviceOptions"`
	RoomSizesLifeCleaning []RoomSizeTier      `yaml:"roomSizesLifeCleaning" json:"roomSizesLifeCleaning"`
	ServiceDetailTypes    []ServiceDetailType `yaml:"serviceDetailTypes" json:"serviceDetailTypes"`
	MaxCountableItems     int                 `yaml:"maxCountableItems" json:"maxCountableItems"`
}

func (c *Catalog) Validate() error {
	if len(c.HousingTypes) == 0 {
		return errs.Wrap(ErrInvalidCatalog, "housing types must not be empty")
	}
	if len(c.RoomSizesLifeCleaning) == 0 {
		return errs.Wrap(ErrInvalidCatalog, "room size tiers must not be empty")
	}
	if len(c.ServiceDetailTypes) == 0 {
		return errs.Wrap(ErrInvalidCatalog, "service detail types must not be empty")
	}
	if c.MaxCountableItems < 1 {
		return errs.Wrap(ErrInvalidCatalog, "maxCountableItems must be at least 1")
	}

	for i, t := range c.RoomSizesLifeCleaning {
		if t.BaseTimeHours < 0 || t.EstimatedPrice < 0 {
			return errs.Wrapf(ErrInvalidCatalog, "room size tier %d has negative values", i)
		}
	}

	seen := make(map[string]struct{}, len(c.ServiceOptions))
	for _, o := range c.ServiceOptions {
		id := strings.TrimSpace(o.ID)
		if id == "" {
			return errs.Wrap(ErrInvalidCatalog, "service option id must not be empty")
		}
		if _, dup := seen[id]; dup {
			return errs.Wrapf(ErrInvalidCatalog, "duplicate service option id %q", id)
		}
		if o.PriceAdd < 0 || o.TimeAddMinutes < 0 {
			return errs.Wrapf(ErrInvalidCatalog, "service option %q has negative values", id)
		}
		seen[id] = struct{}{}
	}

	details := make(map[string]struct{}, len(c.ServiceDetailTypes))
	for _, d := range c.ServiceDetailTypes {
		key := d.ServiceType + "/" + d.Code
		if _, dup := details[key]; dup {
			return errs.Wrapf(ErrInvalidCatalog, "duplicate service detail type %q", key)
		}
		details[key] = struct{}{}
	}

	return nil
}

func (c *Catalog) Tier(index int) (RoomSizeTier, bool) {
	if index < 0 || index >= len(c.RoomSizesLifeCleaning) {
		return RoomSizeTier{}, false
	}
	return c.RoomSizesLifeCleaning[index], true
}

func (c *Catalog) Option(id string) (ServiceOption, bool) {
	for _, o := range c.ServiceOptions {
		if o.ID == id {
			return o, true
		}
	}
	return ServiceOption{}, false
}

func (c *Catalog) DetailType(serviceType, code string) (ServiceDetailType, bool) {
	for _, d := range c.ServiceDetailTypes {
		if d.ServiceType == serviceType && d.Code == code {
			return d, true
		}
	}
	return ServiceDetailType{}, false
}

// DefaultDetailType returns the first detail type listed for serviceType.
func (c *Catalog) DefaultDetailType(serviceType string) (ServiceDetailType, bool) {
	for _, d := range c.ServiceDetailTypes {
		if d.ServiceType == serviceType {
			return d, true
		}
	}
	return ServiceDetailType{}, false
}

func (c *Catalog) HasHousingType(code string) bool {
	for _, h := range c.HousingTypes {
		if h.Code == code {
			return true
		}
	}
	return false
}
