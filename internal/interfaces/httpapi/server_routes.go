package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/health", handler.Health)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/team-members", handler.ListTeamMembers)
	mux.HandleFunc("GET /api/team-members/{subteam}", handler.ListTeamMembersBySubteam)
	mux.HandleFunc("GET /api/team-members-grouped", handler.ListTeamMembersGrouped)
	mux.HandleFunc("GET /api/sub-teams", handler.ListSubTeams)
	mux.HandleFunc("GET /api/sub-teams/{id}", handler.GetSubTeam)
}

func registerAssetRoutes(mux *http.ServeMux, assetsDir string) {
	if assetsDir == "" {
		return
	}
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
}
