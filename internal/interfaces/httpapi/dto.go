package httpapi

import (
	"context"
	"strconv"
	"strings"

	"github.com/team-oshsharohi/roster-service/internal/domain/member"
	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

// teamMemberDTO mirrors the stored row shape used by the flat member listings.
type teamMemberDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Subteam      string `json:"subteam"`
	Color        string `json:"color"`
	ImagePath    string `json:"image_path"`
	DisplayOrder int    `json:"display_order"`
}

// groupedMemberDTO is the card projection used by the grouped roster view.
type groupedMemberDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Img         string `json:"img"`
}

type subTeamDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon"`
	Description  string   `json:"description"`
	Goals        []string `json:"goals"`
	Achievements []string `json:"achievements"`
}

type subTeamDetailDTO struct {
	subTeamDTO
	Members []subTeamMemberDTO `json:"members"`
}

// subTeamMemberDTO is the compact projection embedded in a sub-team page.
// The id is rendered as a string and the title, when present, replaces the
// role label.
type subTeamMemberDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

func memberToDTO(ctx context.Context, v member.Member) teamMemberDTO {
	ctx, span := startSpan(ctx, "httpapi.memberToDTO")
	defer span.End()

	return teamMemberDTO{
		ID:           v.ID,
		Name:         v.Name,
		Role:         v.Role,
		Title:        v.Title,
		Description:  v.Description,
		Subteam:      v.Subteam,
		Color:        v.Color,
		ImagePath:    v.ImagePath,
		DisplayOrder: v.DisplayOrder,
	}
}

func memberToGroupedDTO(ctx context.Context, v member.Member) groupedMemberDTO {
	ctx, span := startSpan(ctx, "httpapi.memberToGroupedDTO")
	defer span.End()

	return groupedMemberDTO{
		ID:          v.ID,
		Name:        v.Name,
		Role:        v.Role,
		Title:       v.Title,
		Description: v.Description,
		Color:       v.Color,
		Img:         v.ImagePath,
	}
}

func memberToSubTeamMemberDTO(ctx context.Context, v member.Member) subTeamMemberDTO {
	ctx, span := startSpan(ctx, "httpapi.memberToSubTeamMemberDTO")
	defer span.End()

	role := v.Role
	if strings.TrimSpace(v.Title) != "" {
		role = v.Title
	}

	return subTeamMemberDTO{
		ID:    strconv.FormatInt(v.ID, 10),
		Name:  v.Name,
		Role:  role,
		Image: v.ImagePath,
	}
}

func subTeamToDTO(ctx context.Context, v subteam.SubTeam) subTeamDTO {
	ctx, span := startSpan(ctx, "httpapi.subTeamToDTO")
	defer span.End()

	return subTeamDTO{
		ID:           v.ID,
		Name:         v.Name,
		Icon:         v.Icon,
		Description:  v.Description,
		Goals:        emptyIfNil(ctx, v.Goals),
		Achievements: emptyIfNil(ctx, v.Achievements),
	}
}

func subTeamDetailToDTO(ctx context.Context, v usecase.SubTeamDetail) subTeamDetailDTO {
	ctx, span := startSpan(ctx, "httpapi.subTeamDetailToDTO")
	defer span.End()

	members := make([]subTeamMemberDTO, 0, len(v.Members))
	for _, m := range v.Members {
		members = append(members, memberToSubTeamMemberDTO(ctx, m))
	}

	return subTeamDetailDTO{
		subTeamDTO: subTeamToDTO(ctx, v.SubTeam),
		Members:    members,
	}
}

func emptyIfNil(ctx context.Context, items []string) []string {
	ctx, span := startSpan(ctx, "httpapi.emptyIfNil")
	defer span.End()

	if items == nil {
		return []string{}
	}
	return items
}
