package rosterclient

import (
	"context"

	"github.com/team-oshsharohi/roster-service/internal/infrastructure/repository/memory"
)

// Source tells the caller where a roster payload came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// GroupedRoster is a grouped member payload tagged with its origin.
type GroupedRoster struct {
	Groups map[string][]GroupedMember
	Source Source
}

// FallbackGroupedMembers builds the grouped roster from the bundled seed
// dataset. Ids match what a freshly seeded server would hand out, so the site
// can swap between live and fallback data without remapping keys.
func FallbackGroupedMembers() map[string][]GroupedMember {
	seed := memory.SeedMembers()
	groups := make(map[string][]GroupedMember)
	for idx, m := range seed {
		groups[m.Subteam] = append(groups[m.Subteam], GroupedMember{
			ID:          int64(idx + 1),
			Name:        m.Name,
			Role:        m.Role,
			Title:       m.Title,
			Description: m.Description,
			Color:       m.Color,
			Img:         m.ImagePath,
		})
	}
	return groups
}

// GroupedTeamMembersWithFallback fetches the live grouped roster and falls
// back to the bundled dataset when the API is unreachable or misbehaving.
// The site stays renderable while the backend is down.
func (c *Client) GroupedTeamMembersWithFallback(ctx context.Context) GroupedRoster {
	grouped, err := c.GroupedTeamMembers(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "grouped roster fetch failed, serving fallback dataset", "error", err)
		return GroupedRoster{Groups: FallbackGroupedMembers(), Source: SourceFallback}
	}

	return GroupedRoster{Groups: grouped, Source: SourceLive}
}
