package queries

//go:generate mockgen -source=wizard.go -destination=../../../tests/mock/queries/wizard_mock.go -package=queriesmock

import (
	"context"

	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWizardNotFound = errs.New("wizard not found")

// WizardView is a wizard session plus its quote, which is derived on every
// read rather than stored.
type WizardView struct {
	Wizard *reservation.Wizard
	Quote  reservation.Quote
}

type WizardReader interface {
	Get(ctx context.Context, id uuid.UUID) (*reservation.Wizard, error)
}

type WizardQueries interface {
	GetByID(ctx context.Context, userID, wizardID uuid.UUID) (*WizardView, error)
}

type wizardQueriesImpl struct {
	sessions WizardReader
	calc     reservation.PriceCalculator
	catalog  *catalog.Catalog
}

func NewWizardQueries(sessions WizardReader, calc reservation.PriceCalculator, cat *catalog.Catalog) WizardQueries {
	return &wizardQueriesImpl{
		sessions: sessions,
		calc:     calc,
		catalog:  cat,
	}
}

func (q *wizardQueriesImpl) GetByID(ctx context.Context, userID, wizardID uuid.UUID) (*WizardView, error) {
	w, err := LoadOwnedWizard(ctx, q.sessions, userID, wizardID)
	if err != nil {
		return nil, err
	}
	return NewWizardView(w, q.calc, q.catalog), nil
}

func NewWizardView(w *reservation.Wizard, calc reservation.PriceCalculator, cat *catalog.Catalog) *WizardView {
	d := w.Draft()
	return &WizardView{Wizard: w, Quote: d.Quote(calc, cat)}
}

// LoadOwnedWizard hides sessions that belong to another user behind
// ErrWizardNotFound.
func LoadOwnedWizard(ctx context.Context, sessions WizardReader, userID, wizardID uuid.UUID) (*reservation.Wizard, error) {
	w, err := sessions.Get(ctx, wizardID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWizardNotFound
		}
		return nil, err
	}
	if w.UserID() != userID || w.Exited() {
		return nil, ErrWizardNotFound
	}
	return w, nil
}
