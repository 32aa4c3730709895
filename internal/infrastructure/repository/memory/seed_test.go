package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
)

func TestSeedMembers_Complete(t *testing.T) {
	members := SeedMembers()
	require.Len(t, members, 22)

	seenNames := make(map[string]struct{}, len(members))
	for _, m := range members {
		require.NotEmpty(t, m.Name)
		require.NotEmpty(t, m.Role)
		require.NotEmpty(t, m.Subteam)
		require.True(t, strings.HasPrefix(m.ImagePath, "/assets/"), "image path %q", m.ImagePath)
		require.Positive(t, m.DisplayOrder, "member %s", m.Name)

		_, dup := seenNames[m.Name]
		require.False(t, dup, "duplicate member %s", m.Name)
		seenNames[m.Name] = struct{}{}
	}
}

func TestSeedMembers_SubteamCounts(t *testing.T) {
	counts := make(map[string]int)
	for _, m := range SeedMembers() {
		counts[m.Subteam]++
	}

	require.Equal(t, map[string]int{
		SubteamLeadership:   2,
		SubteamElectronics:  7,
		SubteamBusiness:     4,
		SubteamChassis:      4,
		SubteamAerodynamics: 5,
	}, counts)
}

func TestSeedSubTeams_AliasTargetsExist(t *testing.T) {
	subTeams := SeedSubTeams()
	require.Len(t, subTeams, 6)

	memberSubteams := make(map[string]struct{})
	for _, m := range SeedMembers() {
		memberSubteams[m.Subteam] = struct{}{}
	}

	aliases := subteam.DefaultAliasTable()
	seenIDs := make(map[string]struct{}, len(subTeams))
	for _, st := range subTeams {
		require.NotEmpty(t, st.ID)
		require.NotEmpty(t, st.Name)
		require.NotEmpty(t, st.Icon)

		_, dup := seenIDs[st.ID]
		require.False(t, dup, "duplicate sub-team id %s", st.ID)
		seenIDs[st.ID] = struct{}{}

		// Every seeded sub-team page must resolve to a populated member pool.
		resolved := aliases.Resolve(st.ID)
		require.Contains(t, memberSubteams, resolved, "sub-team %s resolves to empty pool %q", st.ID, resolved)
	}
}
