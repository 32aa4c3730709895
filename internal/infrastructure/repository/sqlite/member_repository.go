package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/team-oshsharohi/roster-service/internal/domain/member"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

const memberColumns = `id, name, role, title, description, subteam, color, image_path, display_order`

type MemberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(store *Store) *MemberRepository {
	return &MemberRepository{db: store.DB()}
}

func (r *MemberRepository) List(ctx context.Context) ([]member.Member, error) {
	query := `SELECT ` + memberColumns + `
FROM team_members
ORDER BY subteam, display_order, id`

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select team members: %w", err)
	}

	out := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MemberRepository) ListBySubteam(ctx context.Context, subteam string) ([]member.Member, error) {
	query := `SELECT ` + memberColumns + `
FROM team_members
WHERE subteam = ?
ORDER BY display_order, id`

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, subteam); err != nil {
		return nil, fmt.Errorf("select team members by subteam: %w", err)
	}

	out := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MemberRepository) Insert(ctx context.Context, m member.Member) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: member name is required", usecase.ErrConstraint)
	}
	if strings.TrimSpace(m.Subteam) == "" {
		return fmt.Errorf("%w: member subteam is required", usecase.ErrConstraint)
	}
	if strings.TrimSpace(m.ImagePath) == "" {
		return fmt.Errorf("%w: member image path is required", usecase.ErrConstraint)
	}

	query := `INSERT INTO team_members (name, role, title, description, subteam, color, image_path, display_order)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		m.Name, m.Role, m.Title, m.Description, m.Subteam, m.Color, m.ImagePath, m.DisplayOrder,
	); err != nil {
		return fmt.Errorf("insert team member %s: %w", m.Name, err)
	}

	return nil
}

func (r *MemberRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM team_members`); err != nil {
		return fmt.Errorf("clear team members: %w", err)
	}
	// Reset the autoincrement counter so a reseed yields identical ids.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'team_members'`); err != nil {
		return fmt.Errorf("reset team member sequence: %w", err)
	}

	return nil
}
