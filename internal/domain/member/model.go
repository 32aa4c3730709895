package member

// Member is one person on the published team roster. Rows are written only by
// the seed procedure and are immutable afterwards; the public API is read-only.
type Member struct {
	ID           int64
	Name         string `validate:"required"`
	Role         string `validate:"required"`
	Title        string
	Description  string
	Subteam      string `validate:"required"`
	Color        string
	ImagePath    string `validate:"required"`
	DisplayOrder int
}
