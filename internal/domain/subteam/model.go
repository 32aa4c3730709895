package subteam

// SubTeam is one engineering division of the team. Goals and achievements are
// ordered lists; storage serializes them as JSON text and they must round-trip
// without loss of order or content.
type SubTeam struct {
	ID           string `validate:"required"`
	Name         string `validate:"required"`
	Icon         string `validate:"required"`
	Description  string
	Goals        []string
	Achievements []string
}
