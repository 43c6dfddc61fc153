//go:build unit

package reservation_test

import (
	"testing"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewDraft(t *testing.T) {
	cat := builder.NewCatalogBuilder().Build()

	d := reservation.NewDraft(cat, "CLEANING")
	assert.Equal(t, "CLEANING", d.ServiceType)
	assert.Equal(t, "LIFE_CLEANING", d.ServiceDetailType)
	assert.Equal(t, "APARTMENT", d.HousingType)
	assert.Equal(t, 0, d.RoomTierIndex)
	assert.Equal(t, 0, d.SelectedOptions.Len())

	d = reservation.NewDraft(cat, "MOVING")
	assert.Equal(t, reservation.NoRoomTier, d.RoomTierIndex)
	assert.Empty(t, d.ServiceDetailType)
}

func TestDraft_Apply(t *testing.T) {
	cat := builder.NewCatalogBuilder().Build()
	calc := reservation.NewDefaultPriceCalculator(cat)
	manager := builder.NewManagerCandidate("kim")

	testCases := []struct {
		name                string
		patch               reservation.DraftPatch
		errIs               error
		expectField         string
		availabilityChanged bool
		check               func(t *testing.T, d reservation.Draft)
	}{
		{
			name:  "free text fields do not touch the manager",
			patch: reservation.DraftPatch{Pet: ptr("고양이 1마리"), SpecialRequest: ptr("현관 비밀번호 1234")},
			check: func(t *testing.T, d reservation.Draft) {
				assert.Equal(t, "고양이 1마리", d.Pet)
				assert.Equal(t, manager.UUID, d.ManagerID)
			},
		},
		{
			name:                "address change clears the manager",
			patch:               reservation.DraftPatch{Address: ptr("부산시 해운대구 1")},
			availabilityChanged: true,
			check: func(t *testing.T, d reservation.Draft) {
				assert.Empty(t, d.ManagerID)
				assert.Nil(t, d.ManagerInfo)
			},
		},
		{
			name:                "start time change clears the manager",
			patch:               reservation.DraftPatch{StartTime: ptr("14:00")},
			availabilityChanged: true,
		},
		{
			name:                "room tier change clears the manager",
			patch:               reservation.DraftPatch{RoomTierIndex: ptr(3)},
			availabilityChanged: true,
			check: func(t *testing.T, d reservation.Draft) {
				assert.Equal(t, 3, d.RoomTierIndex)
			},
		},
		{
			name:  "same values leave the manager",
			patch: reservation.DraftPatch{StartTime: ptr("09:00"), RoomTierIndex: ptr(1)},
			check: func(t *testing.T, d reservation.Draft) {
				assert.Equal(t, manager.UUID, d.ManagerID)
			},
		},
		{
			name:                "switching to a flat detail type drops the tier",
			patch:               reservation.DraftPatch{ServiceDetailType: ptr("MOVE_IN_CLEANING")},
			availabilityChanged: true,
			check: func(t *testing.T, d reservation.Draft) {
				assert.Equal(t, reservation.NoRoomTier, d.RoomTierIndex)
			},
		},
		{
			name:        "unknown detail type",
			patch:       reservation.DraftPatch{ServiceDetailType: ptr("POOL_CLEANING")},
			errIs:       reservation.ErrInvalidDraft,
			expectField: "serviceDetailType",
		},
		{
			name:        "unknown housing type",
			patch:       reservation.DraftPatch{HousingType: ptr("CASTLE")},
			errIs:       reservation.ErrInvalidDraft,
			expectField: "housingType",
		},
		{
			name:        "malformed date",
			patch:       reservation.DraftPatch{ReservationDate: ptr("2030/03/01")},
			errIs:       reservation.ErrInvalidDraft,
			expectField: "reservationDate",
		},
		{
			name:        "malformed start time",
			patch:       reservation.DraftPatch{StartTime: ptr("9시")},
			errIs:       reservation.ErrInvalidDraft,
			expectField: "startTime",
		},
		{
			name:        "tier out of range",
			patch:       reservation.DraftPatch{RoomTierIndex: ptr(4)},
			errIs:       reservation.ErrInvalidDraft,
			expectField: "roomTierIndex",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := builder.NewDraftBuilder().WithManager(manager).BuildDomain(calc, cat)
			before := d

			changed, err := d.Apply(tc.patch, cat)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				var ve *reservation.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tc.expectField, ve.Field)
				assert.Equal(t, before, d, "failed patch must not modify the draft")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.availabilityChanged, changed)
			if tc.availabilityChanged {
				assert.Empty(t, d.ManagerID)
			}
			if tc.check != nil {
				tc.check(t, d)
			}
		})
	}
}

func TestDraft_RecomputeDerived(t *testing.T) {
	cat := builder.NewCatalogBuilder().Build()
	calc := reservation.NewDefaultPriceCalculator(cat)

	d := builder.NewDraftBuilder().
		WithOptions(reservation.SelectedOption{ID: "FRIDGE", Count: 1}, reservation.SelectedOption{ID: "WINDOW", Count: 2}).
		BuildDomain(calc, cat)

	assert.Equal(t, "13:00", d.EndTime)
	q := d.Quote(calc, cat)
	assert.Equal(t, 240, q.TotalMinutes)
	assert.Equal(t, int64(71000), q.TotalPrice)

	t.Run("unchanged inputs give the same result", func(t *testing.T) {
		first := d.RecomputeDerived(calc, cat)
		firstEnd := d.EndTime
		second := d.RecomputeDerived(calc, cat)

		assert.Equal(t, first, second)
		assert.Equal(t, firstEnd, d.EndTime)
		assert.Equal(t, "13:00", d.EndTime)
		assert.Equal(t, q, second)
	})

	t.Run("empty start time clears the end time", func(t *testing.T) {
		_, err := d.Apply(reservation.DraftPatch{StartTime: ptr("")}, cat)
		require.NoError(t, err)
		d.RecomputeDerived(calc, cat)
		assert.Empty(t, d.EndTime)
	})
}

func TestBuildPayload(t *testing.T) {
	cat := builder.NewCatalogBuilder().Build()
	calc := reservation.NewDefaultPriceCalculator(cat)
	manager := builder.NewManagerCandidate("lee")

	t.Run("maps the draft and serializes every option with a count", func(t *testing.T) {
		d := builder.NewDraftBuilder().
			WithManager(manager).
			WithOptions(reservation.SelectedOption{ID: "FRIDGE"}, reservation.SelectedOption{ID: "WINDOW", Count: 2}).
			BuildDomain(calc, cat)

		p, err := reservation.BuildPayload(d, calc, cat)
		require.NoError(t, err)

		assert.Equal(t, int64(1), p.ServiceDetailTypeID)
		assert.Equal(t, manager.UUID, p.ManagerUUID)
		assert.Equal(t, 1, p.LifeCleaningRoomIdx)
		assert.Equal(t, "09:00", p.StartTime)
		assert.Equal(t, "13:00", p.EndTime)
		assert.Equal(t, int64(71000), p.TotalPrice)
		assert.Equal(t, []reservation.SelectedOption{{ID: "FRIDGE", Count: 1}, {ID: "WINDOW", Count: 2}}, p.ServiceOptions)
	})

	t.Run("unknown detail type", func(t *testing.T) {
		d := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.ServiceDetailType = "GONE"
		}).BuildDomain(calc, cat)

		_, err := reservation.BuildPayload(d, calc, cat)
		require.ErrorIs(t, err, reservation.ErrServiceDetailTypeNotFound)
	})
}
