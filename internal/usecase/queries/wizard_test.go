//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/usecase/queries"
	"homeclean-booking/tests/common/builder"
	queriesmock "homeclean-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWizardQueries_GetByID(t *testing.T) {
	cat := builder.NewCatalogBuilder().Build()
	calc := reservation.NewDefaultPriceCalculator(cat)
	userID := uuid.New()
	now := time.Now()

	t.Run("owner gets the wizard with its quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockWizardReader(ctrl)
		w := builder.NewDraftBuilder().BuildWizard(userID, reservation.StepAddOns, calc, cat, now)
		reader.EXPECT().Get(gomock.Any(), w.ID()).Return(w, nil)

		view, err := queries.NewWizardQueries(reader, calc, cat).GetByID(context.Background(), userID, w.ID())

		require.NoError(t, err)
		assert.Same(t, w, view.Wizard)
		assert.Equal(t, int64(60000), view.Quote.TotalPrice)
	})

	notFound := []struct {
		name  string
		setup func(reader *queriesmock.MockWizardReader) uuid.UUID
	}{
		{
			name: "another user's wizard",
			setup: func(reader *queriesmock.MockWizardReader) uuid.UUID {
				w := builder.NewDraftBuilder().BuildWizard(uuid.New(), reservation.StepAddress, calc, cat, now)
				reader.EXPECT().Get(gomock.Any(), w.ID()).Return(w, nil)
				return w.ID()
			},
		},
		{
			name: "exited wizard",
			setup: func(reader *queriesmock.MockWizardReader) uuid.UUID {
				w := reservation.ReconstructWizard(uuid.New(), userID, reservation.StepAddress, reservation.Draft{}, nil, true, now, now)
				reader.EXPECT().Get(gomock.Any(), w.ID()).Return(w, nil)
				return w.ID()
			},
		},
		{
			name: "expired session",
			setup: func(reader *queriesmock.MockWizardReader) uuid.UUID {
				id := uuid.New()
				reader.EXPECT().Get(gomock.Any(), id).
					Return(nil, infra.WrapRepoErr("wizard session not found", nil, infra.KindNotFound))
				return id
			},
		},
	}
	for _, tc := range notFound {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := queriesmock.NewMockWizardReader(ctrl)
			id := tc.setup(reader)

			_, err := queries.NewWizardQueries(reader, calc, cat).GetByID(context.Background(), userID, id)
			assert.ErrorIs(t, err, queries.ErrWizardNotFound)
		})
	}
}
