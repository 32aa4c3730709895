package httpapi

import (
	"net/http"
	"time"

	"github.com/team-oshsharohi/roster-service/internal/platform/logging"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

type Handler struct {
	rosterService *usecase.RosterService
	logger        *logging.Logger
}

func NewHandler(rosterService *usecase.RosterService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rosterService: rosterService,
		logger:        logger,
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health is the only route that bypasses the response envelope: monitoring
// probes read the body as-is.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMembers")
	defer span.End()

	members, err := h.rosterService.ListMembers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list team members failed", "error", err)
		writeError(ctx, w, err, "Failed to fetch team members")
		return
	}

	items := make([]teamMemberDTO, 0, len(members))
	for _, m := range members {
		items = append(items, memberToDTO(ctx, m))
	}

	writeSuccessCount(ctx, w, http.StatusOK, items, len(items))
}

func (h *Handler) ListTeamMembersBySubteam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMembersBySubteam")
	defer span.End()

	subteamName := r.PathValue("subteam")
	members, err := h.rosterService.ListMembersBySubteam(ctx, subteamName)
	if err != nil {
		h.logger.WarnContext(ctx, "list team members by subteam failed", "subteam", subteamName, "error", err)
		writeError(ctx, w, err, "Failed to fetch team members")
		return
	}

	items := make([]teamMemberDTO, 0, len(members))
	for _, m := range members {
		items = append(items, memberToDTO(ctx, m))
	}

	writeSuccessCount(ctx, w, http.StatusOK, items, len(items))
}

func (h *Handler) ListTeamMembersGrouped(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMembersGrouped")
	defer span.End()

	grouped, err := h.rosterService.GroupedMembers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "group team members failed", "error", err)
		writeError(ctx, w, err, "Failed to fetch team members")
		return
	}

	data := make(map[string][]groupedMemberDTO, len(grouped))
	for subteamName, members := range grouped {
		bucket := make([]groupedMemberDTO, 0, len(members))
		for _, m := range members {
			bucket = append(bucket, memberToGroupedDTO(ctx, m))
		}
		data[subteamName] = bucket
	}

	writeSuccess(ctx, w, http.StatusOK, data)
}

func (h *Handler) ListSubTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSubTeams")
	defer span.End()

	subTeams, err := h.rosterService.ListSubTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sub-teams failed", "error", err)
		writeError(ctx, w, err, "Failed to fetch sub-teams")
		return
	}

	items := make([]subTeamDTO, 0, len(subTeams))
	for _, st := range subTeams {
		items = append(items, subTeamToDTO(ctx, st))
	}

	writeSuccessCount(ctx, w, http.StatusOK, items, len(items))
}

func (h *Handler) GetSubTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSubTeam")
	defer span.End()

	id := r.PathValue("id")
	detail, err := h.rosterService.GetSubTeamWithMembers(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get sub-team failed", "sub_team_id", id, "error", err)
		writeError(ctx, w, err, "Failed to fetch sub-team")
		return
	}

	writeSuccess(ctx, w, http.StatusOK, subTeamDetailToDTO(ctx, detail))
}
