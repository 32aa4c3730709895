package sqlite

import (
	"database/sql"

	"github.com/team-oshsharohi/roster-service/internal/domain/member"
)

type memberTableModel struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	Title        sql.NullString `db:"title"`
	Description  sql.NullString `db:"description"`
	Subteam      string         `db:"subteam"`
	Color        sql.NullString `db:"color"`
	ImagePath    string         `db:"image_path"`
	DisplayOrder int            `db:"display_order"`
}

func (m memberTableModel) toDomain() member.Member {
	return member.Member{
		ID:           m.ID,
		Name:         m.Name,
		Role:         m.Role,
		Title:        m.Title.String,
		Description:  m.Description.String,
		Subteam:      m.Subteam,
		Color:        m.Color.String,
		ImagePath:    m.ImagePath,
		DisplayOrder: m.DisplayOrder,
	}
}
