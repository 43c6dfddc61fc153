package commands

//go:generate mockgen -source=wizard.go -destination=../../../tests/mock/commands/wizard_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/pkg/clock"
	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrWizardNotFound            = queries.ErrWizardNotFound
	ErrValidationFailed          = errs.New("validation failed")
	ErrInvalidTransition         = errs.New("action not allowed at the current step")
	ErrNotAtConfirmStep          = errs.New("wizard is not at the confirmation step")
	ErrNoManagersAvailable       = errs.New("no managers available")
	ErrManagerLookupFailed       = errs.New("manager lookup failed")
	ErrSubmissionFailed          = errs.New("reservation submission failed")
	ErrServiceDetailTypeNotFound = errs.New("service detail type not configured")
	ErrIdempotencyKeyRequired    = errs.New("idempotency-key header required")
	ErrSessionStoreFailed        = errs.New("wizard session store failed")
)

const submitTimeout = 15 * time.Second

type WizardSettings struct {
	Location           *time.Location
	DefaultServiceType string
}

type NextResult struct {
	View *queries.WizardView
	// AutoAssignAttempted is set when leaving the manager step triggered an
	// automatic assignment; ManagerAssigned reports whether it found one.
	AutoAssignAttempted bool
	ManagerAssigned     bool
}

type PrevResult struct {
	View   *queries.WizardView
	Exited bool
}

type SubmitOutcome struct {
	ReservationID uuid.UUID
	IsReplayed    bool
	// Draft and Payload are nil for replays of a submit whose session is gone.
	Draft   *reservation.Draft
	Payload *reservation.CreateReservationPayload
}

type WizardCommands interface {
	Start(ctx context.Context, userID uuid.UUID, initial reservation.DraftPatch) (*queries.WizardView, error)
	Update(ctx context.Context, userID, wizardID uuid.UUID, patch reservation.DraftPatch) (*queries.WizardView, error)
	ToggleOption(ctx context.Context, userID, wizardID uuid.UUID, optionID string) (*queries.WizardView, error)
	SetOptionCount(ctx context.Context, userID, wizardID uuid.UUID, optionID string, count int) (*queries.WizardView, error)
	Next(ctx context.Context, userID, wizardID uuid.UUID) (*NextResult, error)
	Prev(ctx context.Context, userID, wizardID uuid.UUID) (*PrevResult, error)
	LookupManagers(ctx context.Context, userID, wizardID uuid.UUID) (*queries.WizardView, error)
	SelectManager(ctx context.Context, userID, wizardID uuid.UUID, managerUUID string) (*queries.WizardView, error)
	Submit(ctx context.Context, userID, wizardID, idempotencyKey uuid.UUID) (*SubmitOutcome, error)
	Discard(ctx context.Context, userID, wizardID uuid.UUID) error
}

type wizardCommandsImpl struct {
	sessions SessionStore
	managers ManagerFinder
	gateway  ReservationGateway
	notifier Notifier
	calc     reservation.PriceCalculator
	catalog  *catalog.Catalog
	clock    clock.Clock
	settings WizardSettings
	submits  singleflight.Group
}

func NewWizardCommands(
	sessions SessionStore,
	managers ManagerFinder,
	gateway ReservationGateway,
	notifier Notifier,
	calc reservation.PriceCalculator,
	cat *catalog.Catalog,
	clk clock.Clock,
	settings WizardSettings,
) WizardCommands {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &wizardCommandsImpl{
		sessions: sessions,
		managers: managers,
		gateway:  gateway,
		notifier: notifier,
		calc:     calc,
		catalog:  cat,
		clock:    clk,
		settings: settings,
	}
}

func (u *wizardCommandsImpl) Start(ctx context.Context, userID uuid.UUID, initial reservation.DraftPatch) (*queries.WizardView, error) {
	draft := reservation.NewDraft(u.catalog, u.settings.DefaultServiceType)
	if _, err := draft.Apply(initial, u.catalog); err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	w := reservation.NewWizard(userID, draft, u.calc, u.catalog, u.clock.Now())
	if err := u.save(ctx, w); err != nil {
		return nil, err
	}

	slog.Info("wizard started", "wizard_id", w.ID(), "user_id", userID)
	return u.view(w), nil
}

func (u *wizardCommandsImpl) Update(ctx context.Context, userID, wizardID uuid.UUID, patch reservation.DraftPatch) (*queries.WizardView, error) {
	return u.mutate(ctx, userID, wizardID, func(w *reservation.Wizard) error {
		now := u.clock.Now()
		if err := w.Patch(patch, u.calc, u.catalog, now); err != nil {
			return err
		}
		if w.Rewind(clock.Today(u.clock, u.settings.Location), now) {
			slog.Info("wizard rewound after edit", "wizard_id", wizardID, "step", w.Step().String())
		}
		return nil
	})
}

func (u *wizardCommandsImpl) ToggleOption(ctx context.Context, userID, wizardID uuid.UUID, optionID string) (*queries.WizardView, error) {
	return u.mutate(ctx, userID, wizardID, func(w *reservation.Wizard) error {
		return w.ToggleOption(optionID, u.calc, u.catalog, u.clock.Now())
	})
}

func (u *wizardCommandsImpl) SetOptionCount(ctx context.Context, userID, wizardID uuid.UUID, optionID string, count int) (*queries.WizardView, error) {
	return u.mutate(ctx, userID, wizardID, func(w *reservation.Wizard) error {
		accepted, err := w.SetOptionCount(optionID, count, u.calc, u.catalog, u.clock.Now())
		if err != nil {
			return err
		}
		if !accepted {
			slog.Debug("option count ignored", "wizard_id", wizardID, "option_id", optionID, "count", count)
		}
		return nil
	})
}

func (u *wizardCommandsImpl) Next(ctx context.Context, userID, wizardID uuid.UUID) (*NextResult, error) {
	w, err := u.load(ctx, userID, wizardID)
	if err != nil {
		return nil, err
	}

	needsAssignment, err := w.CheckAdvance(clock.Today(u.clock, u.settings.Location))
	if err != nil {
		return nil, classifyDomainErr(err)
	}

	result := &NextResult{}
	if needsAssignment {
		result.AutoAssignAttempted = true
		result.ManagerAssigned = u.autoAssign(ctx, w)
	}

	w.Advance(u.clock.Now())
	if err := u.save(ctx, w); err != nil {
		return nil, err
	}

	result.View = u.view(w)
	return result, nil
}

// autoAssign takes the first available manager. Lookup failures are not
// fatal: the reservation proceeds unassigned.
func (u *wizardCommandsImpl) autoAssign(ctx context.Context, w *reservation.Wizard) bool {
	candidates, err := u.managers.FindAvailable(ctx, w.ManagerQuery(false))
	if err != nil {
		slog.Warn("automatic manager assignment failed",
			"wizard_id", w.ID(),
			"error", err)
		return false
	}
	if len(candidates) == 0 {
		slog.Warn("automatic manager assignment found no managers", "wizard_id", w.ID())
		return false
	}

	w.AssignManager(candidates[0], u.clock.Now())
	return true
}

func (u *wizardCommandsImpl) Prev(ctx context.Context, userID, wizardID uuid.UUID) (*PrevResult, error) {
	w, err := u.load(ctx, userID, wizardID)
	if err != nil {
		return nil, err
	}

	w.Back(u.clock.Now())
	if w.Exited() {
		if err := u.sessions.Delete(ctx, wizardID); err != nil {
			return nil, errs.Mark(err, ErrSessionStoreFailed)
		}
		slog.Info("wizard exited", "wizard_id", wizardID, "user_id", userID)
		return &PrevResult{View: u.view(w), Exited: true}, nil
	}

	if err := u.save(ctx, w); err != nil {
		return nil, err
	}
	return &PrevResult{View: u.view(w)}, nil
}

func (u *wizardCommandsImpl) LookupManagers(ctx context.Context, userID, wizardID uuid.UUID) (*queries.WizardView, error) {
	w, err := u.load(ctx, userID, wizardID)
	if err != nil {
		return nil, err
	}
	if w.Step() != reservation.StepManager {
		return nil, errs.Wrapf(ErrInvalidTransition, "manager lookup at step %s", w.Step())
	}
	if !w.Draft().ChooseManager {
		return nil, errs.Wrap(ErrValidationFailed, "chooseManager must be set to look up managers")
	}

	candidates, err := u.managers.FindAvailable(ctx, w.ManagerQuery(true))
	if err != nil {
		slog.Warn("manager lookup failed", "wizard_id", wizardID, "error", err)
		return nil, errs.Mark(err, ErrManagerLookupFailed)
	}
	if len(candidates) == 0 {
		return nil, ErrNoManagersAvailable
	}

	w.SetCandidates(candidates, u.clock.Now())
	if err := u.save(ctx, w); err != nil {
		return nil, err
	}
	return u.view(w), nil
}

func (u *wizardCommandsImpl) SelectManager(ctx context.Context, userID, wizardID uuid.UUID, managerUUID string) (*queries.WizardView, error) {
	return u.mutate(ctx, userID, wizardID, func(w *reservation.Wizard) error {
		return w.SelectManager(managerUUID, u.clock.Now())
	})
}

// Submit collapses concurrent calls for one wizard into a single gateway call
// and replays earlier successes by idempotency key.
func (u *wizardCommandsImpl) Submit(ctx context.Context, userID, wizardID, idempotencyKey uuid.UUID) (*SubmitOutcome, error) {
	if idempotencyKey == uuid.Nil {
		return nil, ErrIdempotencyKeyRequired
	}

	v, err, shared := u.submits.Do(wizardID.String(), func() (any, error) {
		// detached so one cancelled caller does not fail the collapsed ones
		submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), submitTimeout)
		defer cancel()
		return u.submit(submitCtx, userID, wizardID, idempotencyKey)
	})
	if err != nil {
		return nil, err
	}

	outcome := v.(*SubmitOutcome)
	if shared && outcome.ReservationID != uuid.Nil {
		slog.Info("concurrent submit collapsed", "wizard_id", wizardID, "reservation_id", outcome.ReservationID)
	}
	return outcome, nil
}

func (u *wizardCommandsImpl) submit(ctx context.Context, userID, wizardID, idempotencyKey uuid.UUID) (*SubmitOutcome, error) {
	existingID, found, err := u.gateway.FindByIdempotencyKey(ctx, userID, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, ErrSubmissionFailed)
	}
	if found {
		return &SubmitOutcome{ReservationID: existingID, IsReplayed: true}, nil
	}

	w, err := u.load(ctx, userID, wizardID)
	if err != nil {
		return nil, err
	}
	if w.Step() != reservation.StepConfirm {
		return nil, ErrNotAtConfirmStep
	}

	draft := w.Draft()
	today := clock.Today(u.clock, u.settings.Location)
	if step, err := reservation.FirstInvalidStep(draft, today); err != nil {
		slog.Warn("submit rejected: draft no longer valid", "wizard_id", wizardID, "step", step.String())
		if w.Rewind(today, u.clock.Now()) {
			if saveErr := u.save(ctx, w); saveErr != nil {
				slog.Warn("failed to save rewound wizard", "wizard_id", wizardID, "error", saveErr)
			}
		}
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	payload, err := reservation.BuildPayload(draft, u.calc, u.catalog)
	if err != nil {
		if errs.Is(err, reservation.ErrServiceDetailTypeNotFound) {
			slog.Error("catalog has no detail type for draft",
				"service_type", draft.ServiceType,
				"service_detail_type", draft.ServiceDetailType)
			return nil, errs.Mark(err, ErrServiceDetailTypeNotFound)
		}
		return nil, errs.Mark(err, ErrSubmissionFailed)
	}

	result, err := u.gateway.Create(ctx, SubmitRequest{
		UserID:         userID,
		WizardID:       wizardID,
		IdempotencyKey: idempotencyKey,
		Payload:        payload,
	})
	if err != nil {
		// session stays so the user can retry
		return nil, errs.Mark(err, ErrSubmissionFailed)
	}

	u.notifyCreated(ctx, userID, result.ReservationID)

	if err := u.sessions.Delete(ctx, wizardID); err != nil {
		slog.Warn("failed to discard submitted wizard", "wizard_id", wizardID, "error", err)
	}

	slog.Info("reservation submitted",
		"wizard_id", wizardID,
		"reservation_id", result.ReservationID,
		"replayed", result.IsReplayed)

	return &SubmitOutcome{
		ReservationID: result.ReservationID,
		IsReplayed:    result.IsReplayed,
		Draft:         &draft,
		Payload:       &payload,
	}, nil
}

func (u *wizardCommandsImpl) notifyCreated(ctx context.Context, userID, reservationID uuid.UUID) {
	n := Notification{
		Type:          NotificationReservationCreated,
		ReservationID: reservationID,
		Message:       "예약이 접수되었습니다.",
		CreatedAt:     u.clock.Now(),
	}
	if err := u.notifier.Notify(ctx, userID, n); err != nil {
		slog.Warn("failed to push reservation notification",
			"reservation_id", reservationID,
			"error", err)
	}
}

func (u *wizardCommandsImpl) Discard(ctx context.Context, userID, wizardID uuid.UUID) error {
	if _, err := u.load(ctx, userID, wizardID); err != nil {
		return err
	}
	if err := u.sessions.Delete(ctx, wizardID); err != nil {
		return errs.Mark(err, ErrSessionStoreFailed)
	}
	return nil
}

func (u *wizardCommandsImpl) mutate(
	ctx context.Context,
	userID, wizardID uuid.UUID,
	fn func(w *reservation.Wizard) error,
) (*queries.WizardView, error) {
	w, err := u.load(ctx, userID, wizardID)
	if err != nil {
		return nil, err
	}
	if err := fn(w); err != nil {
		return nil, classifyDomainErr(err)
	}
	if err := u.save(ctx, w); err != nil {
		return nil, err
	}
	return u.view(w), nil
}

func (u *wizardCommandsImpl) load(ctx context.Context, userID, wizardID uuid.UUID) (*reservation.Wizard, error) {
	w, err := queries.LoadOwnedWizard(ctx, u.sessions, userID, wizardID)
	if err != nil {
		if errs.Is(err, ErrWizardNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	return w, nil
}

func (u *wizardCommandsImpl) save(ctx context.Context, w *reservation.Wizard) error {
	if err := u.sessions.Save(ctx, w); err != nil {
		return errs.Mark(err, ErrSessionStoreFailed)
	}
	return nil
}

func (u *wizardCommandsImpl) view(w *reservation.Wizard) *queries.WizardView {
	return queries.NewWizardView(w, u.calc, u.catalog)
}

func classifyDomainErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrTerminalStep):
		return errs.Mark(err, ErrInvalidTransition)
	case errs.Is(err, reservation.ErrStepValidation),
		errs.Is(err, reservation.ErrInvalidDraft),
		errs.Is(err, reservation.ErrUnknownOption),
		errs.Is(err, reservation.ErrOptionNotCounted),
		errs.Is(err, reservation.ErrUnknownCandidate):
		return errs.Mark(err, ErrValidationFailed)
	default:
		return errs.Wrap(err, "wizard update")
	}
}
