package reservation

import (
	"strings"
	"time"

	"homeclean-booking/internal/domain/catalog"

	"github.com/google/uuid"
)

type Step int

const (
	StepAddress Step = iota + 1
	StepHousing
	StepDateTime
	StepAddOns
	StepManager
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepHousing:
		return "housing"
	case StepDateTime:
		return "datetime"
	case StepAddOns:
		return "addons"
	case StepManager:
		return "manager"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

func (s Step) IsValid() bool {
	return s >= StepAddress && s <= StepConfirm
}

// ValidateStep reports whether the draft may leave step. today is the current
// date at midnight in the booking time zone.
func ValidateStep(step Step, d Draft, today time.Time) error {
	switch step {
	case StepAddress:
		if strings.TrimSpace(d.Address) == "" {
			return newStepError(step, "address", "address is required")
		}
		if strings.TrimSpace(d.AddressDetail) == "" {
			return newStepError(step, "addressDetail", "address detail is required")
		}
	case StepDateTime:
		if d.ReservationDate == "" {
			return newStepError(step, "reservationDate", "reservation date is required")
		}
		if d.StartTime == "" {
			return newStepError(step, "startTime", "start time is required")
		}
		date, err := ParseDate(d.ReservationDate, today.Location())
		if err != nil {
			return newStepError(step, "reservationDate", "reservation date is malformed")
		}
		if date.Before(today) {
			return newStepError(step, "reservationDate", "reservation date cannot be in the past")
		}
	case StepManager:
		if d.ChooseManager && d.ManagerID == "" {
			return newStepError(step, "managerId", "choose a manager or let one be assigned")
		}
	case StepConfirm:
		return ErrTerminalStep
	}
	return nil
}

// FirstInvalidStep runs every step before confirm against d and returns the
// earliest failing step with its error, or a nil error when all pass.
func FirstInvalidStep(d Draft, today time.Time) (Step, error) {
	for s := StepAddress; s < StepConfirm; s++ {
		if err := ValidateStep(s, d, today); err != nil {
			return s, err
		}
	}
	return 0, nil
}

// Wizard is one user's in-progress reservation flow.
type Wizard struct {
	id         uuid.UUID
	userID     uuid.UUID
	step       Step
	draft      Draft
	candidates []ManagerCandidate
	exited     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewWizard(userID uuid.UUID, draft Draft, calc PriceCalculator, cat *catalog.Catalog, now time.Time) *Wizard {
	w := &Wizard{
		id:        uuid.New(),
		userID:    userID,
		step:      StepAddress,
		draft:     draft,
		createdAt: now,
		updatedAt: now,
	}
	w.draft.RecomputeDerived(calc, cat)
	return w
}

func ReconstructWizard(
	id, userID uuid.UUID,
	step Step,
	draft Draft,
	candidates []ManagerCandidate,
	exited bool,
	createdAt, updatedAt time.Time,
) *Wizard {
	return &Wizard{
		id:         id,
		userID:     userID,
		step:       step,
		draft:      draft,
		candidates: candidates,
		exited:     exited,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (w *Wizard) ID() uuid.UUID                  { return w.id }
func (w *Wizard) UserID() uuid.UUID              { return w.userID }
func (w *Wizard) Step() Step                     { return w.step }
func (w *Wizard) Draft() Draft                   { return w.draft }
func (w *Wizard) Candidates() []ManagerCandidate { return w.candidates }
func (w *Wizard) Exited() bool                   { return w.exited }
func (w *Wizard) CreatedAt() time.Time           { return w.createdAt }
func (w *Wizard) UpdatedAt() time.Time           { return w.updatedAt }

func (w *Wizard) Patch(p DraftPatch, calc PriceCalculator, cat *catalog.Catalog, now time.Time) error {
	changed, err := w.draft.Apply(p, cat)
	if err != nil {
		return err
	}
	if changed {
		w.candidates = nil
		// the manager was cleared; the manager step has to run again
		if w.step > StepManager {
			w.step = StepManager
		}
	}
	w.draft.RecomputeDerived(calc, cat)
	w.updatedAt = now
	return nil
}

// Rewind moves the wizard back to the earliest step the draft no longer
// satisfies and reports whether the step changed.
func (w *Wizard) Rewind(today, now time.Time) bool {
	step, err := FirstInvalidStep(w.draft, today)
	if err == nil || step >= w.step {
		return false
	}
	w.step = step
	w.updatedAt = now
	return true
}

func (w *Wizard) ToggleOption(id string, calc PriceCalculator, cat *catalog.Catalog, now time.Time) error {
	if _, ok := cat.Option(id); !ok {
		return ErrUnknownOption
	}
	w.draft.SelectedOptions.Toggle(id)
	w.draft.RecomputeDerived(calc, cat)
	w.updatedAt = now
	return nil
}

// SetOptionCount reports whether the count was accepted; out-of-range counts
// are ignored without error.
func (w *Wizard) SetOptionCount(id string, count int, calc PriceCalculator, cat *catalog.Catalog, now time.Time) (bool, error) {
	opt, ok := cat.Option(id)
	if !ok {
		return false, ErrUnknownOption
	}
	if !opt.Countable {
		return false, ErrOptionNotCounted
	}
	if !w.draft.SelectedOptions.SetCount(id, count, cat.MaxCountableItems) {
		return false, nil
	}
	w.draft.RecomputeDerived(calc, cat)
	w.updatedAt = now
	return true, nil
}

// CheckAdvance validates the current step. needsAssignment is true when the
// wizard is leaving the manager step without a manager.
func (w *Wizard) CheckAdvance(today time.Time) (needsAssignment bool, err error) {
	if err := ValidateStep(w.step, w.draft, today); err != nil {
		return false, err
	}
	return w.step == StepManager && w.draft.ManagerID == "", nil
}

func (w *Wizard) Advance(now time.Time) {
	if w.step < StepConfirm {
		w.step++
	}
	w.updatedAt = now
}

// Back steps backwards; at the first step it exits the wizard instead.
func (w *Wizard) Back(now time.Time) {
	if w.step == StepAddress {
		w.exited = true
	} else {
		w.step--
	}
	w.updatedAt = now
}

func (w *Wizard) SetCandidates(c []ManagerCandidate, now time.Time) {
	w.candidates = c
	w.updatedAt = now
}

func (w *Wizard) SelectManager(managerUUID string, now time.Time) error {
	for _, c := range w.candidates {
		if c.UUID == managerUUID {
			w.draft.AssignManager(c)
			w.updatedAt = now
			return nil
		}
	}
	return ErrUnknownCandidate
}

func (w *Wizard) AssignManager(m ManagerCandidate, now time.Time) {
	w.draft.AssignManager(m)
	w.updatedAt = now
}

// ManagerQuery builds the availability request for the current draft.
func (w *Wizard) ManagerQuery(manual bool) ManagerQuery {
	return ManagerQuery{
		Address:       w.draft.Address,
		StartTime:     CombineDateTime(w.draft.ReservationDate, w.draft.StartTime),
		EndTime:       CombineDateTime(w.draft.ReservationDate, w.draft.EndTime),
		ManagerChoose: manual,
	}
}
