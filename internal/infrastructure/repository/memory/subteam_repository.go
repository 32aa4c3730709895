package memory

import (
	"context"
	"sync"

	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
)

// SubTeamRepository is an in-memory subteam.Repository preserving insertion
// order, matching sqlite storage order.
type SubTeamRepository struct {
	mu   sync.RWMutex
	rows []subteam.SubTeam
}

func NewSubTeamRepository(seed []subteam.SubTeam) *SubTeamRepository {
	r := &SubTeamRepository{}
	for _, item := range seed {
		_ = r.Upsert(context.Background(), item)
	}

	return r
}

func (r *SubTeamRepository) List(_ context.Context) ([]subteam.SubTeam, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]subteam.SubTeam, len(r.rows))
	copy(out, r.rows)

	return out, nil
}

func (r *SubTeamRepository) GetByID(_ context.Context, id string) (subteam.SubTeam, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.rows {
		if item.ID == id {
			return item, true, nil
		}
	}

	return subteam.SubTeam{}, false, nil
}

func (r *SubTeamRepository) Upsert(_ context.Context, s subteam.SubTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.rows {
		if r.rows[idx].ID == s.ID {
			r.rows[idx] = s
			return nil
		}
	}
	r.rows = append(r.rows, s)

	return nil
}

func (r *SubTeamRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = nil

	return nil
}
