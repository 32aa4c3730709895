package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/team-oshsharohi/roster-service/internal/infrastructure/repository/memory"
	"github.com/team-oshsharohi/roster-service/internal/platform/logging"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	memberRepo := memory.NewMemberRepository(memory.SeedMembers())
	subTeamRepo := memory.NewSubTeamRepository(memory.SeedSubTeams())
	rosterService := usecase.NewRosterService(memberRepo, subTeamRepo, nil)
	handler := NewHandler(rosterService, logging.NewNop())

	return NewRouter(handler, logging.NewNop(), nil, "")
}

func getJSON(t *testing.T, router http.Handler, path string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal %s response: %v", path, err)
	}

	return rec.Code, body
}

func TestListTeamMembers(t *testing.T) {
	router := newTestRouter(t)

	code, body := getJSON(t, router, "/api/team-members")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if ok, _ := body["success"].(bool); !ok {
		t.Fatalf("expected success=true: %v", body)
	}

	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	wantCount := len(memory.SeedMembers())
	if len(data) != wantCount {
		t.Fatalf("got %d members, want %d", len(data), wantCount)
	}
	if count, _ := body["count"].(float64); int(count) != wantCount {
		t.Fatalf("count=%v, want %d", body["count"], wantCount)
	}

	first, ok := data[0].(map[string]any)
	if !ok {
		t.Fatalf("expected member object, got %T", data[0])
	}
	for _, key := range []string{"id", "name", "role", "subteam", "image_path", "display_order"} {
		if _, ok := first[key]; !ok {
			t.Fatalf("member row missing key %q: %v", key, first)
		}
	}
}

func TestListTeamMembersBySubteam(t *testing.T) {
	router := newTestRouter(t)

	code, body := getJSON(t, router, "/api/team-members/Leadership")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if count, _ := body["count"].(float64); int(count) != 2 {
		t.Fatalf("count=%v, want 2", body["count"])
	}

	data := body["data"].([]any)
	firstName := data[0].(map[string]any)["name"]
	if firstName != "Tajbir Ahmed" {
		t.Fatalf("expected Tajbir Ahmed first, got %v", firstName)
	}
}

func TestListTeamMembersBySubteam_UnknownIsEmpty(t *testing.T) {
	router := newTestRouter(t)

	code, body := getJSON(t, router, "/api/team-members/Unknown")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if count, _ := body["count"].(float64); int(count) != 0 {
		t.Fatalf("count=%v, want 0", body["count"])
	}
	if data, ok := body["data"].([]any); !ok || len(data) != 0 {
		t.Fatalf("expected empty data array, got %v", body["data"])
	}
}

func TestListTeamMembersGrouped(t *testing.T) {
	router := newTestRouter(t)

	code, body := getJSON(t, router, "/api/team-members-grouped")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if _, ok := body["count"]; ok {
		t.Fatal("grouped response must not carry a count")
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected grouped object, got %T", body["data"])
	}
	if len(data) != 5 {
		t.Fatalf("got %d groups, want 5: %v", len(data), data)
	}

	leads, ok := data["Leadership"].([]any)
	if !ok || len(leads) != 2 {
		t.Fatalf("unexpected Leadership group: %v", data["Leadership"])
	}
	lead := leads[0].(map[string]any)
	if _, ok := lead["img"]; !ok {
		t.Fatalf("grouped member missing img key: %v", lead)
	}
	if _, ok := lead["subteam"]; ok {
		t.Fatalf("grouped member must not repeat the subteam key: %v", lead)
	}
}

func TestListSubTeams(t *testing.T) {
	router := newTestRouter(t)

	code, body := getJSON(t, router, "/api/sub-teams")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if count, _ := body["count"].(float64); int(count) != len(memory.SeedSubTeams()) {
		t.Fatalf("count=%v, want %d", body["count"], len(memory.SeedSubTeams()))
	}

	data := body["data"].([]any)
	first := data[0].(map[string]any)
	if _, ok := first["goals"].([]any); !ok {
		t.Fatalf("expected goals array, got %T", first["goals"])
	}
}

func TestGetSubTeam(t *testing.T) {
	router := newTestRouter(t)

	code, body := getJSON(t, router, "/api/sub-teams/powertrain")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected detail object, got %T", body["data"])
	}
	if data["id"] != "powertrain" {
		t.Fatalf("expected id=powertrain, got %v", data["id"])
	}

	members, ok := data["members"].([]any)
	if !ok || len(members) == 0 {
		t.Fatalf("expected members in sub-team detail: %v", data["members"])
	}
	first := members[0].(map[string]any)
	if _, ok := first["id"].(string); !ok {
		t.Fatalf("sub-team member id must be a string, got %T", first["id"])
	}
	if first["role"] != "Electronics, Powertrain & Drivetrain" {
		t.Fatalf("expected title to replace role, got %v", first["role"])
	}
	if _, ok := first["image"]; !ok {
		t.Fatalf("sub-team member missing image key: %v", first)
	}
}

func TestGetSubTeam_AliasedPagesShareMembers(t *testing.T) {
	router := newTestRouter(t)

	_, chassisBody := getJSON(t, router, "/api/sub-teams/chassis")
	_, dynamicsBody := getJSON(t, router, "/api/sub-teams/dynamics")

	chassisMembers := chassisBody["data"].(map[string]any)["members"].([]any)
	dynamicsMembers := dynamicsBody["data"].(map[string]any)["members"].([]any)

	if len(chassisMembers) == 0 || len(chassisMembers) != len(dynamicsMembers) {
		t.Fatalf("aliased pages diverge: %d vs %d members", len(chassisMembers), len(dynamicsMembers))
	}
}

func TestGetSubTeam_NotFound(t *testing.T) {
	router := newTestRouter(t)

	code, body := getJSON(t, router, "/api/sub-teams/no-such-team")
	if code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", code)
	}
	if ok, _ := body["success"].(bool); ok {
		t.Fatalf("expected success=false: %v", body)
	}
	if msg, _ := body["error"].(string); msg == "" {
		t.Fatal("expected error message")
	}
}

func TestHealth_BypassesEnvelope(t *testing.T) {
	router := newTestRouter(t)

	code, body := getJSON(t, router, "/api/health")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status=ok, got %v", body["status"])
	}
	if _, ok := body["timestamp"].(string); !ok {
		t.Fatalf("expected timestamp string, got %T", body["timestamp"])
	}
	if _, ok := body["success"]; ok {
		t.Fatal("health response must not be enveloped")
	}
}
