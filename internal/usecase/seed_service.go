package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/team-oshsharohi/roster-service/internal/domain/member"
	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
	"github.com/team-oshsharohi/roster-service/internal/platform/logging"
)

// SeedResult reports how many records the seed run wrote.
type SeedResult struct {
	MembersInserted  int
	SubTeamsUpserted int
}

// SeedService replaces the stored roster with a canonical dataset. Runs are
// idempotent: both tables are cleared first, so repeating a seed yields the
// same rows and the same ids.
type SeedService struct {
	memberRepo  member.Repository
	subTeamRepo subteam.Repository
	validate    *validator.Validate
	logger      *logging.Logger
}

func NewSeedService(memberRepo member.Repository, subTeamRepo subteam.Repository, logger *logging.Logger) *SeedService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SeedService{
		memberRepo:  memberRepo,
		subTeamRepo: subTeamRepo,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

func (s *SeedService) Seed(ctx context.Context, members []member.Member, subTeams []subteam.SubTeam) (SeedResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.Seed")
	defer span.End()

	if len(members) == 0 {
		return SeedResult{}, fmt.Errorf("%w: seed member dataset is empty", ErrInvalidInput)
	}
	if len(subTeams) == 0 {
		return SeedResult{}, fmt.Errorf("%w: seed sub-team dataset is empty", ErrInvalidInput)
	}

	for idx, m := range members {
		if err := s.validate.Struct(m); err != nil {
			return SeedResult{}, fmt.Errorf("%w: member %d (%s): %v", ErrConstraint, idx, m.Name, err)
		}
	}
	for idx, st := range subTeams {
		if err := s.validate.Struct(st); err != nil {
			return SeedResult{}, fmt.Errorf("%w: sub-team %d (%s): %v", ErrConstraint, idx, st.ID, err)
		}
	}

	if err := s.memberRepo.Clear(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("clear team members: %w", err)
	}
	if err := s.subTeamRepo.Clear(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("clear sub-teams: %w", err)
	}

	result := SeedResult{}
	orderBySubteam := make(map[string]int, len(members))
	for _, m := range members {
		if m.DisplayOrder == 0 {
			orderBySubteam[m.Subteam]++
			m.DisplayOrder = orderBySubteam[m.Subteam]
		}
		if err := s.memberRepo.Insert(ctx, m); err != nil {
			return result, fmt.Errorf("insert team member %s: %w", m.Name, err)
		}
		result.MembersInserted++
	}

	for _, st := range subTeams {
		if err := s.subTeamRepo.Upsert(ctx, st); err != nil {
			return result, fmt.Errorf("upsert sub-team %s: %w", st.ID, err)
		}
		result.SubTeamsUpserted++
	}

	s.logger.InfoContext(ctx, "roster seeded",
		"members", result.MembersInserted,
		"sub_teams", result.SubTeamsUpserted,
	)

	return result, nil
}
