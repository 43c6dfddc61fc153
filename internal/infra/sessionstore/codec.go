package sessionstore

import (
	"encoding/json"
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"

	"github.com/google/uuid"
)

// snapshot is the stored form of a wizard. Both stores keep encoded bytes so
// callers never share slices with a stored session.
type snapshot struct {
	ID         uuid.UUID                      `json:"id"`
	UserID     uuid.UUID                      `json:"userId"`
	Step       reservation.Step               `json:"step"`
	Draft      reservation.Draft              `json:"draft"`
	Candidates []reservation.ManagerCandidate `json:"candidates,omitempty"`
	Exited     bool                           `json:"exited"`
	CreatedAt  time.Time                      `json:"createdAt"`
	UpdatedAt  time.Time                      `json:"updatedAt"`
}

func encode(w *reservation.Wizard) ([]byte, error) {
	data, err := json.Marshal(snapshot{
		ID:         w.ID(),
		UserID:     w.UserID(),
		Step:       w.Step(),
		Draft:      w.Draft(),
		Candidates: w.Candidates(),
		Exited:     w.Exited(),
		CreatedAt:  w.CreatedAt(),
		UpdatedAt:  w.UpdatedAt(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode wizard session", err, infra.KindCorrupted)
	}
	return data, nil
}

func decode(data []byte) (*reservation.Wizard, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, infra.WrapRepoErr("failed to decode wizard session", err, infra.KindCorrupted)
	}
	if !s.Step.IsValid() {
		return nil, infra.WrapRepoErr("wizard session has invalid step", nil, infra.KindCorrupted)
	}
	return reservation.ReconstructWizard(
		s.ID,
		s.UserID,
		s.Step,
		s.Draft,
		s.Candidates,
		s.Exited,
		s.CreatedAt,
		s.UpdatedAt,
	), nil
}
