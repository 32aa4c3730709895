package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/team-oshsharohi/roster-service/internal/domain/member"
	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
)

// SubTeamDetail pairs a sub-team with the members that present under it.
// Membership is resolved through the alias table, so several sub-team pages
// may share one member pool.
type SubTeamDetail struct {
	SubTeam subteam.SubTeam
	Members []member.Member
}

type RosterService struct {
	memberRepo  member.Repository
	subTeamRepo subteam.Repository
	aliases     subteam.AliasTable
}

func NewRosterService(memberRepo member.Repository, subTeamRepo subteam.Repository, aliases subteam.AliasTable) *RosterService {
	if aliases == nil {
		aliases = subteam.DefaultAliasTable()
	}

	return &RosterService{
		memberRepo:  memberRepo,
		subTeamRepo: subTeamRepo,
		aliases:     aliases,
	}
}

func (s *RosterService) ListMembers(ctx context.Context) ([]member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListMembers")
	defer span.End()

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	return members, nil
}

func (s *RosterService) ListMembersBySubteam(ctx context.Context, subteamName string) ([]member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListMembersBySubteam")
	defer span.End()

	subteamName = strings.TrimSpace(subteamName)
	if subteamName == "" {
		return nil, fmt.Errorf("%w: subteam name is required", ErrInvalidInput)
	}

	members, err := s.memberRepo.ListBySubteam(ctx, subteamName)
	if err != nil {
		return nil, fmt.Errorf("list team members by subteam: %w", err)
	}

	return members, nil
}

// GroupedMembers buckets the full roster by subteam label. Keys are exactly
// the distinct subteam values present in storage.
func (s *RosterService) GroupedMembers(ctx context.Context) (map[string][]member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GroupedMembers")
	defer span.End()

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	grouped := make(map[string][]member.Member)
	for _, m := range members {
		grouped[m.Subteam] = append(grouped[m.Subteam], m)
	}

	return grouped, nil
}

func (s *RosterService) ListSubTeams(ctx context.Context) ([]subteam.SubTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListSubTeams")
	defer span.End()

	subTeams, err := s.subTeamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sub-teams: %w", err)
	}

	return subTeams, nil
}

// GetSubTeamWithMembers looks the sub-team up by its raw id, then fetches its
// members under the alias-resolved subteam label. An id absent from the alias
// table filters by the id itself, which yields an empty member list.
func (s *RosterService) GetSubTeamWithMembers(ctx context.Context, id string) (SubTeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetSubTeamWithMembers")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return SubTeamDetail{}, fmt.Errorf("%w: sub-team id is required", ErrInvalidInput)
	}

	subTeam, exists, err := s.subTeamRepo.GetByID(ctx, id)
	if err != nil {
		return SubTeamDetail{}, fmt.Errorf("get sub-team: %w", err)
	}
	if !exists {
		return SubTeamDetail{}, fmt.Errorf("%w: sub-team=%s", ErrNotFound, id)
	}

	members, err := s.memberRepo.ListBySubteam(ctx, s.aliases.Resolve(id))
	if err != nil {
		return SubTeamDetail{}, fmt.Errorf("list sub-team members: %w", err)
	}

	return SubTeamDetail{SubTeam: subTeam, Members: members}, nil
}
