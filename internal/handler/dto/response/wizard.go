package response

import (
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/commands"
	"homeclean-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SelectedOptionResponse struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

type ManagerResponse struct {
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	ProfileImage  string  `json:"profileImage,omitempty"`
	AverageRate   float64 `json:"averageRate"`
	IntroduceText string  `json:"introduceText,omitempty"`
}

// DraftResponse mirrors reservation.Draft. Options is filled by hand since
// the selection keeps its state unexported.
type DraftResponse struct {
	ServiceType        string                   `json:"serviceType"`
	ServiceDetailType  string                   `json:"serviceDetailType"`
	Address            string                   `json:"address"`
	AddressDetail      string                   `json:"addressDetail"`
	HousingType        string                   `json:"housingType"`
	ReservationDate    string                   `json:"reservationDate"`
	StartTime          string                   `json:"startTime"`
	EndTime            string                   `json:"endTime"`
	Pet                string                   `json:"pet"`
	ManagerID          string                   `json:"managerId"`
	ChooseManager      bool                     `json:"chooseManager"`
	RoomTierIndex      int                      `json:"roomTierIndex"`
	Options            []SelectedOptionResponse `json:"selectedOptions"`
	HousingInformation string                   `json:"housingInformation"`
	SpecialRequest     string                   `json:"specialRequest"`
	ManagerInfo        *ManagerResponse         `json:"managerInfo"`
}

type QuoteResponse struct {
	TotalMinutes int   `json:"totalMinutes"`
	TotalPrice   int64 `json:"totalPrice"`
}

type WizardResponse struct {
	ID         uuid.UUID         `json:"id"`
	Step       int               `json:"step"`
	StepName   string            `json:"stepName"`
	Draft      DraftResponse     `json:"draft"`
	Quote      QuoteResponse     `json:"quote"`
	Candidates []ManagerResponse `json:"candidates"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type NextResponse struct {
	WizardResponse
	AutoAssignAttempted bool `json:"autoAssignAttempted"`
	ManagerAssigned     bool `json:"managerAssigned"`
}

type PrevResponse struct {
	Exited bool            `json:"exited"`
	Wizard *WizardResponse `json:"wizard,omitempty"`
}

type SubmitResponse struct {
	ReservationID uuid.UUID      `json:"reservationId"`
	IsReplayed    bool           `json:"isReplayed"`
	Draft         *DraftResponse `json:"draft,omitempty"`
	TotalPrice    *int64         `json:"totalPrice,omitempty"`
}

func FromDraft(d reservation.Draft) (DraftResponse, error) {
	var res DraftResponse
	if err := copier.CopyWithOption(&res, &d, copier.Option{DeepCopy: true}); err != nil {
		return DraftResponse{}, errs.Wrap(err, "copy draft")
	}

	items := d.SelectedOptions.Items()
	res.Options = make([]SelectedOptionResponse, len(items))
	for i, it := range items {
		res.Options[i] = SelectedOptionResponse{ID: it.ID, Count: it.Count}
	}
	return res, nil
}

func FromWizardView(v *queries.WizardView) (*WizardResponse, error) {
	w := v.Wizard
	draft, err := FromDraft(w.Draft())
	if err != nil {
		return nil, err
	}
	res := &WizardResponse{
		ID:         w.ID(),
		Step:       int(w.Step()),
		StepName:   w.Step().String(),
		Draft:      draft,
		Quote:      QuoteResponse{TotalMinutes: v.Quote.TotalMinutes, TotalPrice: v.Quote.TotalPrice},
		Candidates: []ManagerResponse{},
		CreatedAt:  w.CreatedAt(),
		UpdatedAt:  w.UpdatedAt(),
	}
	if c := w.Candidates(); len(c) > 0 {
		if err := copier.Copy(&res.Candidates, &c); err != nil {
			return nil, errs.Wrap(err, "copy manager candidates")
		}
	}
	return res, nil
}

func FromNextResult(r *commands.NextResult) (*NextResponse, error) {
	view, err := FromWizardView(r.View)
	if err != nil {
		return nil, err
	}
	return &NextResponse{
		WizardResponse:      *view,
		AutoAssignAttempted: r.AutoAssignAttempted,
		ManagerAssigned:     r.ManagerAssigned,
	}, nil
}

func FromPrevResult(r *commands.PrevResult) (*PrevResponse, error) {
	if r.Exited || r.View == nil {
		return &PrevResponse{Exited: true}, nil
	}
	view, err := FromWizardView(r.View)
	if err != nil {
		return nil, err
	}
	return &PrevResponse{Wizard: view}, nil
}

func FromSubmitOutcome(o *commands.SubmitOutcome) (*SubmitResponse, error) {
	res := &SubmitResponse{ReservationID: o.ReservationID, IsReplayed: o.IsReplayed}
	if o.Draft != nil {
		d, err := FromDraft(*o.Draft)
		if err != nil {
			return nil, err
		}
		res.Draft = &d
	}
	if o.Payload != nil {
		total := o.Payload.TotalPrice
		res.TotalPrice = &total
	}
	return res, nil
}
