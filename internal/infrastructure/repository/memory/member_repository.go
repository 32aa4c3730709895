package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/team-oshsharohi/roster-service/internal/domain/member"
)

// MemberRepository is an in-memory member.Repository used by tests and by the
// client fallback snapshot. It mirrors the sqlite ordering rules.
type MemberRepository struct {
	mu     sync.RWMutex
	rows   []member.Member
	nextID int64
}

func NewMemberRepository(seed []member.Member) *MemberRepository {
	r := &MemberRepository{nextID: 1}
	for _, item := range seed {
		item.ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, item)
	}

	return r
}

func (r *MemberRepository) List(_ context.Context) ([]member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]member.Member, len(r.rows))
	copy(out, r.rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Subteam != out[j].Subteam {
			return out[i].Subteam < out[j].Subteam
		}
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MemberRepository) ListBySubteam(_ context.Context, subteam string) ([]member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]member.Member, 0, len(r.rows))
	for _, item := range r.rows {
		if item.Subteam == subteam {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MemberRepository) Insert(_ context.Context, m member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, m)

	return nil
}

func (r *MemberRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = nil

	return nil
}
