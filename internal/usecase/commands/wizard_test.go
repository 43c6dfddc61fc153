//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/pkg/clock"
	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/commands"
	"homeclean-booking/tests/common/builder"
	commandsmock "homeclean-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	sessions *commandsmock.MockSessionStore
	managers *commandsmock.MockManagerFinder
	gateway  *commandsmock.MockReservationGateway
	notifier *commandsmock.MockNotifier
	cat      *catalog.Catalog
	calc     reservation.PriceCalculator
	clk      *clock.MockClock
	userID   uuid.UUID
	sut      commands.WizardCommands
}

func (s *WizardCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.sessions = commandsmock.NewMockSessionStore(s.mockCtrl)
	s.managers = commandsmock.NewMockManagerFinder(s.mockCtrl)
	s.gateway = commandsmock.NewMockReservationGateway(s.mockCtrl)
	s.notifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.cat = builder.NewCatalogBuilder().Build()
	s.calc = reservation.NewDefaultPriceCalculator(s.cat)
	s.clk = clock.NewMockClock(time.Now())
	s.userID = uuid.New()

	s.sut = commands.NewWizardCommands(
		s.sessions, s.managers, s.gateway, s.notifier,
		s.calc, s.cat, s.clk,
		commands.WizardSettings{Location: time.Local, DefaultServiceType: "CLEANING"},
	)
}

func (s *WizardCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardCommandsSuite(t *testing.T) {
	suite.Run(t, new(WizardCommandsTestSuite))
}

// stored puts w behind the session mock and returns it.
func (s *WizardCommandsTestSuite) stored(step reservation.Step, mutate ...func(*builder.DraftBuilder)) *reservation.Wizard {
	b := builder.NewDraftBuilder()
	for _, m := range mutate {
		b.With(m)
	}
	w := b.BuildWizard(s.userID, step, s.calc, s.cat, s.clk.Now())
	s.sessions.EXPECT().Get(gomock.Any(), w.ID()).Return(w, nil).AnyTimes()
	return w
}

// ================================================================================
// Start / Update
// ================================================================================

func (s *WizardCommandsTestSuite) TestStart() {
	s.Run("success: starts at step 1 with catalog defaults", func() {
		var saved *reservation.Wizard
		s.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w *reservation.Wizard) error {
				saved = w
				return nil
			}).Times(1)

		view, err := s.sut.Start(s.ctx, s.userID, reservation.DraftPatch{})

		s.Require().NoError(err)
		s.Equal(reservation.StepAddress, view.Wizard.Step())
		s.Equal(s.userID, view.Wizard.UserID())
		s.Equal("APARTMENT", view.Wizard.Draft().HousingType)
		s.Equal("LIFE_CLEANING", view.Wizard.Draft().ServiceDetailType)
		s.Equal(0, view.Wizard.Draft().RoomTierIndex)
		s.Equal(int64(40000), view.Quote.TotalPrice)
		s.Same(saved, view.Wizard)
	})

	s.Run("error: invalid initial data is a validation failure", func() {
		housing := "CASTLE"
		_, err := s.sut.Start(s.ctx, s.userID, reservation.DraftPatch{HousingType: &housing})

		s.assertIs(err, commands.ErrValidationFailed)
		var ve *reservation.ValidationError
		s.Require().True(errs.As(err, &ve))
		s.Equal("housingType", ve.Field)
	})

	s.Run("error: session store failure", func() {
		s.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

		_, err := s.sut.Start(s.ctx, s.userID, reservation.DraftPatch{})
		s.assertIs(err, commands.ErrSessionStoreFailed)
	})
}

func (s *WizardCommandsTestSuite) TestUpdate() {
	s.Run("success: patch recomputes the end time", func() {
		w := s.stored(reservation.StepDateTime)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		start := "13:30"
		view, err := s.sut.Update(s.ctx, s.userID, w.ID(), reservation.DraftPatch{StartTime: &start})

		s.Require().NoError(err)
		s.Equal("16:30", view.Wizard.Draft().EndTime)
	})

	s.Run("success: invalidating an earlier step at confirm rewinds to it", func() {
		w := s.stored(reservation.StepConfirm)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		address, past := "", "2000-01-01"
		view, err := s.sut.Update(s.ctx, s.userID, w.ID(), reservation.DraftPatch{Address: &address, ReservationDate: &past})

		s.Require().NoError(err)
		s.Equal(reservation.StepAddress, view.Wizard.Step())
	})

	s.Run("success: a date edit at confirm clears the manager and reopens the manager step", func() {
		w := s.stored(reservation.StepConfirm, func(b *builder.DraftBuilder) {
			b.Manager = &reservation.ManagerCandidate{UUID: "mgr-1", Name: "김매니저"}
		})
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		date := s.clk.Now().AddDate(0, 0, 10).Format(reservation.DateLayout)
		view, err := s.sut.Update(s.ctx, s.userID, w.ID(), reservation.DraftPatch{ReservationDate: &date})

		s.Require().NoError(err)
		s.Equal(reservation.StepManager, view.Wizard.Step())
		s.Empty(view.Wizard.Draft().ManagerID)
	})

	s.Run("success: edits that keep the draft valid stay on the current step", func() {
		w := s.stored(reservation.StepConfirm)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		request := "현관 비밀번호 1234"
		view, err := s.sut.Update(s.ctx, s.userID, w.ID(), reservation.DraftPatch{SpecialRequest: &request})

		s.Require().NoError(err)
		s.Equal(reservation.StepConfirm, view.Wizard.Step())
	})

	s.Run("error: another user's wizard is not found", func() {
		w := s.stored(reservation.StepAddress)

		_, err := s.sut.Update(s.ctx, uuid.New(), w.ID(), reservation.DraftPatch{})
		s.assertIs(err, commands.ErrWizardNotFound)
	})

	s.Run("error: expired session is not found", func() {
		id := uuid.New()
		s.sessions.EXPECT().Get(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("wizard session not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.sut.Update(s.ctx, s.userID, id, reservation.DraftPatch{})
		s.assertIs(err, commands.ErrWizardNotFound)
	})

	s.Run("error: store read failure", func() {
		id := uuid.New()
		s.sessions.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("timeout")).Times(1)

		_, err := s.sut.Update(s.ctx, s.userID, id, reservation.DraftPatch{})
		s.assertIs(err, commands.ErrSessionStoreFailed)
	})
}

func (s *WizardCommandsTestSuite) TestOptions() {
	s.Run("success: toggle then count", func() {
		w := s.stored(reservation.StepAddOns)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(2)

		_, err := s.sut.ToggleOption(s.ctx, s.userID, w.ID(), "BATHROOM")
		s.Require().NoError(err)
		view, err := s.sut.SetOptionCount(s.ctx, s.userID, w.ID(), "BATHROOM", 2)
		s.Require().NoError(err)

		s.Equal(2, view.Wizard.Draft().SelectedOptions.Count("BATHROOM"))
		s.Equal(int64(80000), view.Quote.TotalPrice)
	})

	s.Run("success: out-of-range count is ignored", func() {
		w := s.stored(reservation.StepAddOns, func(b *builder.DraftBuilder) {
			b.Options = []reservation.SelectedOption{{ID: "WINDOW", Count: 2}}
		})
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		view, err := s.sut.SetOptionCount(s.ctx, s.userID, w.ID(), "WINDOW", 0)
		s.Require().NoError(err)
		s.Equal(2, view.Wizard.Draft().SelectedOptions.Count("WINDOW"))
	})

	s.Run("error: count on a non-countable option", func() {
		w := s.stored(reservation.StepAddOns, func(b *builder.DraftBuilder) {
			b.Options = []reservation.SelectedOption{{ID: "FRIDGE", Count: 1}}
		})

		_, err := s.sut.SetOptionCount(s.ctx, s.userID, w.ID(), "FRIDGE", 2)
		s.assertIs(err, commands.ErrValidationFailed)
	})

	s.Run("error: unknown option", func() {
		w := s.stored(reservation.StepAddOns)

		_, err := s.sut.ToggleOption(s.ctx, s.userID, w.ID(), "POOL")
		s.assertIs(err, commands.ErrValidationFailed)
	})
}

// ================================================================================
// Navigation
// ================================================================================

func (s *WizardCommandsTestSuite) TestNext() {
	kim := builder.NewManagerCandidate("kim")
	lee := builder.NewManagerCandidate("lee")

	s.Run("success: advances one step", func() {
		w := s.stored(reservation.StepAddress)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		res, err := s.sut.Next(s.ctx, s.userID, w.ID())

		s.Require().NoError(err)
		s.Equal(reservation.StepHousing, res.View.Wizard.Step())
		s.False(res.AutoAssignAttempted)
	})

	s.Run("success: leaving the manager step assigns the first candidate", func() {
		w := s.stored(reservation.StepManager)
		s.managers.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q reservation.ManagerQuery) ([]reservation.ManagerCandidate, error) {
				s.False(q.ManagerChoose)
				s.Equal(w.Draft().Address, q.Address)
				return []reservation.ManagerCandidate{kim, lee}, nil
			}).Times(1)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		res, err := s.sut.Next(s.ctx, s.userID, w.ID())

		s.Require().NoError(err)
		s.True(res.AutoAssignAttempted)
		s.True(res.ManagerAssigned)
		s.Equal(reservation.StepConfirm, res.View.Wizard.Step())
		s.Equal(kim.UUID, res.View.Wizard.Draft().ManagerID)
	})

	s.Run("success: assignment failure still advances", func() {
		w := s.stored(reservation.StepManager)
		s.managers.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("manager api unreachable")).Times(1)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		res, err := s.sut.Next(s.ctx, s.userID, w.ID())

		s.Require().NoError(err)
		s.True(res.AutoAssignAttempted)
		s.False(res.ManagerAssigned)
		s.Equal(reservation.StepConfirm, res.View.Wizard.Step())
		s.Empty(res.View.Wizard.Draft().ManagerID)
	})

	s.Run("success: no candidates still advances", func() {
		w := s.stored(reservation.StepManager)
		s.managers.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		res, err := s.sut.Next(s.ctx, s.userID, w.ID())

		s.Require().NoError(err)
		s.False(res.ManagerAssigned)
	})

	s.Run("success: manager already chosen skips assignment", func() {
		w := s.stored(reservation.StepManager, func(b *builder.DraftBuilder) {
			b.ChooseManager = true
			b.Manager = &lee
		})
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		res, err := s.sut.Next(s.ctx, s.userID, w.ID())

		s.Require().NoError(err)
		s.False(res.AutoAssignAttempted)
		s.Equal(lee.UUID, res.View.Wizard.Draft().ManagerID)
	})

	s.Run("error: step validation keeps the step", func() {
		w := s.stored(reservation.StepAddress, func(b *builder.DraftBuilder) { b.Address = "" })

		_, err := s.sut.Next(s.ctx, s.userID, w.ID())

		s.assertIs(err, commands.ErrValidationFailed)
		var ve *reservation.ValidationError
		s.Require().True(errs.As(err, &ve))
		s.Equal("address", ve.Field)
		s.Equal(reservation.StepAddress, w.Step())
	})

	s.Run("error: no step after confirm", func() {
		w := s.stored(reservation.StepConfirm)

		_, err := s.sut.Next(s.ctx, s.userID, w.ID())
		s.assertIs(err, commands.ErrInvalidTransition)
	})
}

func (s *WizardCommandsTestSuite) TestPrev() {
	s.Run("success: steps back", func() {
		w := s.stored(reservation.StepDateTime)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		res, err := s.sut.Prev(s.ctx, s.userID, w.ID())

		s.Require().NoError(err)
		s.False(res.Exited)
		s.Equal(reservation.StepHousing, res.View.Wizard.Step())
	})

	s.Run("success: back from the first step exits and discards", func() {
		w := s.stored(reservation.StepAddress)
		s.sessions.EXPECT().Delete(gomock.Any(), w.ID()).Return(nil).Times(1)

		res, err := s.sut.Prev(s.ctx, s.userID, w.ID())

		s.Require().NoError(err)
		s.True(res.Exited)
	})
}

func (s *WizardCommandsTestSuite) TestDiscard() {
	s.Run("success", func() {
		w := s.stored(reservation.StepHousing)
		s.sessions.EXPECT().Delete(gomock.Any(), w.ID()).Return(nil).Times(1)

		s.NoError(s.sut.Discard(s.ctx, s.userID, w.ID()))
	})

	s.Run("error: another user's wizard", func() {
		w := s.stored(reservation.StepHousing)

		s.assertIs(s.sut.Discard(s.ctx, uuid.New(), w.ID()), commands.ErrWizardNotFound)
	})
}

// ================================================================================
// Managers
// ================================================================================

func (s *WizardCommandsTestSuite) TestLookupManagers() {
	choose := func(b *builder.DraftBuilder) { b.ChooseManager = true }
	kim := builder.NewManagerCandidate("kim")

	s.Run("success: candidates are stored and selectable", func() {
		w := s.stored(reservation.StepManager, choose)
		s.managers.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q reservation.ManagerQuery) ([]reservation.ManagerCandidate, error) {
				s.True(q.ManagerChoose)
				return []reservation.ManagerCandidate{kim}, nil
			}).Times(1)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(2)

		view, err := s.sut.LookupManagers(s.ctx, s.userID, w.ID())
		s.Require().NoError(err)
		s.Len(view.Wizard.Candidates(), 1)

		view, err = s.sut.SelectManager(s.ctx, s.userID, w.ID(), kim.UUID)
		s.Require().NoError(err)
		s.Equal(kim.UUID, view.Wizard.Draft().ManagerID)
	})

	s.Run("error: wrong step", func() {
		w := s.stored(reservation.StepAddOns, choose)

		_, err := s.sut.LookupManagers(s.ctx, s.userID, w.ID())
		s.assertIs(err, commands.ErrInvalidTransition)
	})

	s.Run("error: manual choice not requested", func() {
		w := s.stored(reservation.StepManager)

		_, err := s.sut.LookupManagers(s.ctx, s.userID, w.ID())
		s.assertIs(err, commands.ErrValidationFailed)
	})

	s.Run("error: upstream failure", func() {
		w := s.stored(reservation.StepManager, choose)
		s.managers.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).Return(nil, errors.New("502")).Times(1)

		_, err := s.sut.LookupManagers(s.ctx, s.userID, w.ID())
		s.assertIs(err, commands.ErrManagerLookupFailed)
	})

	s.Run("error: nobody available", func() {
		w := s.stored(reservation.StepManager, choose)
		s.managers.EXPECT().FindAvailable(gomock.Any(), gomock.Any()).
			Return([]reservation.ManagerCandidate{}, nil).Times(1)

		_, err := s.sut.LookupManagers(s.ctx, s.userID, w.ID())
		s.assertIs(err, commands.ErrNoManagersAvailable)
	})

	s.Run("error: selecting a manager that was not looked up", func() {
		w := s.stored(reservation.StepManager, choose)

		_, err := s.sut.SelectManager(s.ctx, s.userID, w.ID(), kim.UUID)
		s.assertIs(err, commands.ErrValidationFailed)
	})
}

// ================================================================================
// Submit
// ================================================================================

func (s *WizardCommandsTestSuite) TestSubmit() {
	key := uuid.New()
	reservationID := uuid.New()

	s.Run("success: creates, notifies and discards the session", func() {
		w := s.stored(reservation.StepConfirm, func(b *builder.DraftBuilder) {
			b.Options = []reservation.SelectedOption{{ID: "FRIDGE", Count: 1}, {ID: "WINDOW", Count: 2}}
		})
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(uuid.Nil, false, nil).Times(1)
		s.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.SubmitRequest) (*commands.SubmitResult, error) {
				s.Equal(w.ID(), req.WizardID)
				s.Equal(key, req.IdempotencyKey)
				s.Equal(int64(71000), req.Payload.TotalPrice)
				s.Equal(int64(1), req.Payload.ServiceDetailTypeID)
				return &commands.SubmitResult{ReservationID: reservationID}, nil
			}).Times(1)
		s.notifier.EXPECT().Notify(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, n commands.Notification) error {
				s.Equal(commands.NotificationReservationCreated, n.Type)
				s.Equal(reservationID, n.ReservationID)
				return nil
			}).Times(1)
		s.sessions.EXPECT().Delete(gomock.Any(), w.ID()).Return(nil).Times(1)

		out, err := s.sut.Submit(s.ctx, s.userID, w.ID(), key)

		s.Require().NoError(err)
		s.Equal(reservationID, out.ReservationID)
		s.False(out.IsReplayed)
		s.Require().NotNil(out.Payload)
		s.Equal(w.Draft().EndTime, out.Payload.EndTime)
	})

	s.Run("success: notifier failure does not fail the submit", func() {
		w := s.stored(reservation.StepConfirm)
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(uuid.Nil, false, nil).Times(1)
		s.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.SubmitResult{ReservationID: reservationID}, nil).Times(1)
		s.notifier.EXPECT().Notify(gomock.Any(), s.userID, gomock.Any()).Return(errors.New("hub stopped")).Times(1)
		s.sessions.EXPECT().Delete(gomock.Any(), w.ID()).Return(nil).Times(1)

		_, err := s.sut.Submit(s.ctx, s.userID, w.ID(), key)
		s.NoError(err)
	})

	s.Run("success: repeated key replays without touching the session", func() {
		wizardID := uuid.New()
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(reservationID, true, nil).Times(1)

		out, err := s.sut.Submit(s.ctx, s.userID, wizardID, key)

		s.Require().NoError(err)
		s.True(out.IsReplayed)
		s.Equal(reservationID, out.ReservationID)
		s.Nil(out.Draft)
	})

	s.Run("success: a cancelled caller does not cancel the shared submit", func() {
		w := s.stored(reservation.StepConfirm)
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).
			DoAndReturn(func(ctx context.Context, _, _ uuid.UUID) (uuid.UUID, bool, error) {
				s.NoError(ctx.Err())
				return uuid.Nil, false, nil
			}).Times(1)
		s.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ commands.SubmitRequest) (*commands.SubmitResult, error) {
				s.NoError(ctx.Err())
				_, hasDeadline := ctx.Deadline()
				s.True(hasDeadline)
				return &commands.SubmitResult{ReservationID: reservationID}, nil
			}).Times(1)
		s.notifier.EXPECT().Notify(gomock.Any(), s.userID, gomock.Any()).Return(nil).Times(1)
		s.sessions.EXPECT().Delete(gomock.Any(), w.ID()).Return(nil).Times(1)

		out, err := s.sut.Submit(ctx, s.userID, w.ID(), key)

		s.Require().NoError(err)
		s.Equal(reservationID, out.ReservationID)
	})

	s.Run("error: a confirm-step draft that fails an earlier step is not submitted", func() {
		w := s.stored(reservation.StepConfirm, func(b *builder.DraftBuilder) {
			b.Address = ""
			b.ReservationDate = "2000-01-01"
		})
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(uuid.Nil, false, nil).Times(1)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		_, err := s.sut.Submit(s.ctx, s.userID, w.ID(), key)

		s.assertIs(err, commands.ErrValidationFailed)
		var ve *reservation.ValidationError
		s.Require().True(errs.As(err, &ve))
		s.Equal(reservation.StepAddress, ve.Step)
		s.Equal("address", ve.Field)
		s.Equal(reservation.StepAddress, w.Step())
	})

	s.Run("error: a past date is rejected at submit", func() {
		w := s.stored(reservation.StepConfirm, func(b *builder.DraftBuilder) { b.ReservationDate = "2000-01-01" })
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(uuid.Nil, false, nil).Times(1)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)

		_, err := s.sut.Submit(s.ctx, s.userID, w.ID(), key)

		s.assertIs(err, commands.ErrValidationFailed)
		s.Equal(reservation.StepDateTime, w.Step())
	})

	s.Run("error: editing a confirmed draft into an invalid state blocks submit", func() {
		w := s.stored(reservation.StepConfirm)
		s.sessions.EXPECT().Save(gomock.Any(), w).Return(nil).Times(1)
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(uuid.Nil, false, nil).Times(1)

		address, past := "", "2000-01-01"
		_, err := s.sut.Update(s.ctx, s.userID, w.ID(), reservation.DraftPatch{Address: &address, ReservationDate: &past})
		s.Require().NoError(err)

		_, err = s.sut.Submit(s.ctx, s.userID, w.ID(), key)
		s.assertIs(err, commands.ErrNotAtConfirmStep)
	})

	s.Run("error: idempotency key required", func() {
		_, err := s.sut.Submit(s.ctx, s.userID, uuid.New(), uuid.Nil)
		s.assertIs(err, commands.ErrIdempotencyKeyRequired)
	})

	s.Run("error: not at the confirmation step", func() {
		w := s.stored(reservation.StepManager)
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(uuid.Nil, false, nil).Times(1)

		_, err := s.sut.Submit(s.ctx, s.userID, w.ID(), key)
		s.assertIs(err, commands.ErrNotAtConfirmStep)
	})

	s.Run("error: gateway failure keeps the session for retry", func() {
		w := s.stored(reservation.StepConfirm)
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(uuid.Nil, false, nil).Times(1)
		s.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("tx aborted")).Times(1)

		_, err := s.sut.Submit(s.ctx, s.userID, w.ID(), key)
		s.assertIs(err, commands.ErrSubmissionFailed)
	})

	s.Run("error: detail type missing from catalog", func() {
		w := s.stored(reservation.StepConfirm, func(b *builder.DraftBuilder) { b.ServiceDetailType = "GONE" })
		s.gateway.EXPECT().FindByIdempotencyKey(gomock.Any(), s.userID, key).Return(uuid.Nil, false, nil).Times(1)

		_, err := s.sut.Submit(s.ctx, s.userID, w.ID(), key)
		s.assertIs(err, commands.ErrServiceDetailTypeNotFound)
	})
}

// assertIs also matches sentinels attached with errs.Mark.
func (s *WizardCommandsTestSuite) assertIs(err, target error) {
	s.T().Helper()
	s.Truef(errs.Is(err, target), "expected %v, got %v", target, err)
}
