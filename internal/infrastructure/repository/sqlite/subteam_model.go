package sqlite

import (
	"database/sql"
	"fmt"

	sonic "github.com/bytedance/sonic"

	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

type subTeamTableModel struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Icon         string         `db:"icon"`
	Description  sql.NullString `db:"description"`
	Goals        sql.NullString `db:"goals"`
	Achievements sql.NullString `db:"achievements"`
}

func (m subTeamTableModel) toDomain() (subteam.SubTeam, error) {
	goals, err := decodeStringList(m.Goals)
	if err != nil {
		return subteam.SubTeam{}, fmt.Errorf("%w: goals for sub-team %s: %v", usecase.ErrDecode, m.ID, err)
	}
	achievements, err := decodeStringList(m.Achievements)
	if err != nil {
		return subteam.SubTeam{}, fmt.Errorf("%w: achievements for sub-team %s: %v", usecase.ErrDecode, m.ID, err)
	}

	return subteam.SubTeam{
		ID:           m.ID,
		Name:         m.Name,
		Icon:         m.Icon,
		Description:  m.Description.String,
		Goals:        goals,
		Achievements: achievements,
	}, nil
}

// Goals and achievements live in TEXT columns as JSON arrays; the seed
// procedure is the only writer, so a decode failure is a server fault.
func decodeStringList(value sql.NullString) ([]string, error) {
	if !value.Valid || value.String == "" {
		return []string{}, nil
	}

	var out []string
	if err := sonic.UnmarshalString(value.String, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}

	return out, nil
}

func encodeStringList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}

	out, err := sonic.MarshalString(items)
	if err != nil {
		return "", err
	}

	return out, nil
}
