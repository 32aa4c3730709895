package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

const subTeamColumns = `id, name, icon, description, goals, achievements`

type SubTeamRepository struct {
	db *sqlx.DB
}

func NewSubTeamRepository(store *Store) *SubTeamRepository {
	return &SubTeamRepository{db: store.DB()}
}

func (r *SubTeamRepository) List(ctx context.Context) ([]subteam.SubTeam, error) {
	query := `SELECT ` + subTeamColumns + ` FROM sub_teams`

	var rows []subTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select sub-teams: %w", err)
	}

	out := make([]subteam.SubTeam, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *SubTeamRepository) GetByID(ctx context.Context, id string) (subteam.SubTeam, bool, error) {
	query := `SELECT ` + subTeamColumns + ` FROM sub_teams WHERE id = ?`

	var row subTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if crerr.Is(err, sql.ErrNoRows) {
			return subteam.SubTeam{}, false, nil
		}
		return subteam.SubTeam{}, false, fmt.Errorf("select sub-team %s: %w", id, err)
	}

	item, err := row.toDomain()
	if err != nil {
		return subteam.SubTeam{}, false, err
	}

	return item, true, nil
}

func (r *SubTeamRepository) Upsert(ctx context.Context, s subteam.SubTeam) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: sub-team id is required", usecase.ErrConstraint)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: sub-team name is required", usecase.ErrConstraint)
	}

	goals, err := encodeStringList(s.Goals)
	if err != nil {
		return fmt.Errorf("encode goals for sub-team %s: %w", s.ID, err)
	}
	achievements, err := encodeStringList(s.Achievements)
	if err != nil {
		return fmt.Errorf("encode achievements for sub-team %s: %w", s.ID, err)
	}

	query := `INSERT OR REPLACE INTO sub_teams (id, name, icon, description, goals, achievements)
VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Icon, s.Description, goals, achievements,
	); err != nil {
		return fmt.Errorf("upsert sub-team %s: %w", s.ID, err)
	}

	return nil
}

func (r *SubTeamRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sub_teams`); err != nil {
		return fmt.Errorf("clear sub-teams: %w", err)
	}

	return nil
}
