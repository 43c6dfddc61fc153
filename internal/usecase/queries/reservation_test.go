//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/queries"
	"homeclean-booking/tests/common/builder"
	queriesmock "homeclean-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	store    *queriesmock.MockReservationReadStore
	sut      queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.sut = queries.NewReservationQueries(s.store)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: owner sees the reservation", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := s.sut.GetByID(s.ctx, view.UserID, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: another user gets not found", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err := s.sut.GetByID(s.ctx, uuid.New(), view.ID)
		s.ErrorIs(err, queries.ErrReservationNotFound)
	})

	s.Run("error: missing row", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.sut.GetByID(s.ctx, view.UserID, id)
		s.ErrorIs(err, queries.ErrReservationNotFound)
	})

	s.Run("error: store failure passes through", func() {
		id := uuid.New()
		boom := errors.New("connection reset")
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, boom).Times(1)

		_, err := s.sut.GetByID(s.ctx, view.UserID, id)
		s.ErrorIs(err, boom)
	})
}

func (s *ReservationQueriesTestSuite) TestListByUser() {
	userID := uuid.New()
	base := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	items := make([]*queries.ReservationListItem, 4)
	for i := range items {
		createdAt := base.Add(-time.Duration(i) * time.Minute)
		items[i] = builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.UserID = userID
			b.CreatedAt = createdAt
		}).BuildListItem()
	}

	s.Run("success: first page with a next cursor", func() {
		s.store.EXPECT().FindByUserFirstPage(gomock.Any(), userID, int32(4)).Return(items, nil).Times(1)

		got, next, err := s.sut.ListByUser(s.ctx, userID, nil, 3)

		s.Require().NoError(err)
		s.Len(got, 3)
		s.Require().NotNil(next)
		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(items[2].ID, id)
		s.True(items[2].CreatedAt.Equal(createdAt))
	})

	s.Run("success: last page has no cursor", func() {
		after := queries.EncodeAfterCursor(items[2].CreatedAt, items[2].ID)
		s.store.EXPECT().
			FindByUserKeyset(gomock.Any(), userID, gomock.Any(), items[2].ID, int32(4)).
			Return(items[3:], nil).Times(1)

		got, next, err := s.sut.ListByUser(s.ctx, userID, &queries.Cursor{After: after}, 3)

		s.Require().NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("success: limit falls back to the default", func() {
		s.store.EXPECT().FindByUserFirstPage(gomock.Any(), userID, int32(21)).Return(nil, nil).Times(1)

		got, next, err := s.sut.ListByUser(s.ctx, userID, nil, 0)
		s.Require().NoError(err)
		s.Empty(got)
		s.Nil(next)
	})

	s.Run("error: malformed cursor", func() {
		_, _, err := s.sut.ListByUser(s.ctx, userID, &queries.Cursor{After: "not-a-cursor!"}, 3)
		s.True(errs.Is(err, queries.ErrInvalidCursor))
	})
}
