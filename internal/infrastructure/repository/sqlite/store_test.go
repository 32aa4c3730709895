package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/team-oshsharohi/roster-service/internal/domain/member"
	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
	"github.com/team-oshsharohi/roster-service/internal/usecase"

	crerr "github.com/cockroachdb/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "db", "roster.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestOpen_CreatesDirectoryAndSchema(t *testing.T) {
	store := openTestStore(t)

	members, err := NewMemberRepository(store).List(context.Background())
	if err != nil {
		t.Fatalf("list members on fresh store: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected empty roster, got %d rows", len(members))
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close first handle: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	_ = second.Close()
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("   ")
	if err == nil {
		t.Fatal("expected error for empty path")
	}
	if !crerr.Is(err, usecase.ErrStorageInit) {
		t.Fatalf("expected storage init error, got %v", err)
	}
}

func TestMemberRepository_OrderingAndFilter(t *testing.T) {
	store := openTestStore(t)
	repo := NewMemberRepository(store)
	ctx := context.Background()

	records := []member.Member{
		{Name: "Suhail Ashraf", Role: "CHASSIS & SUSPENSION", Subteam: "Chassis & Suspension", ImagePath: "/assets/suhail-ashraf.jpg", DisplayOrder: 2},
		{Name: "Tajbir Ahmed", Role: "TEAM LEAD", Subteam: "Leadership", ImagePath: "/assets/tajbir-ahmed.jpg", DisplayOrder: 1},
		{Name: "Kazi Ahnaf Muttaquif Ahmed", Role: "CHASSIS & SUSPENSION", Subteam: "Chassis & Suspension", ImagePath: "/assets/kazi-ahnaf-muttaquif.jpg", DisplayOrder: 1},
		{Name: "Mahir Dyan", Role: "CO-TEAM LEAD", Subteam: "Leadership", ImagePath: "/assets/mahir-dyan.jpg", DisplayOrder: 2},
	}
	for _, rec := range records {
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("insert %s: %v", rec.Name, err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	wantOrder := []string{"Kazi Ahnaf Muttaquif Ahmed", "Suhail Ashraf", "Tajbir Ahmed", "Mahir Dyan"}
	if len(all) != len(wantOrder) {
		t.Fatalf("unexpected row count: %d", len(all))
	}
	for idx, name := range wantOrder {
		if all[idx].Name != name {
			t.Fatalf("row %d: got %q want %q", idx, all[idx].Name, name)
		}
	}

	leads, err := repo.ListBySubteam(ctx, "Leadership")
	if err != nil {
		t.Fatalf("list by subteam: %v", err)
	}
	if len(leads) != 2 || leads[0].Name != "Tajbir Ahmed" || leads[1].Name != "Mahir Dyan" {
		t.Fatalf("unexpected leadership rows: %+v", leads)
	}

	unknown, err := repo.ListBySubteam(ctx, "No Such Subteam")
	if err != nil {
		t.Fatalf("list unknown subteam: %v", err)
	}
	if len(unknown) != 0 {
		t.Fatalf("expected empty result for unknown subteam, got %d", len(unknown))
	}
}

func TestMemberRepository_InsertRejectsMissingFields(t *testing.T) {
	store := openTestStore(t)
	repo := NewMemberRepository(store)

	err := repo.Insert(context.Background(), member.Member{Name: "No Subteam", Role: "X", ImagePath: "/assets/x.jpg"})
	if !crerr.Is(err, usecase.ErrConstraint) {
		t.Fatalf("expected constraint error, got %v", err)
	}
}

func TestSubTeamRepository_GoalsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	repo := NewSubTeamRepository(store)
	ctx := context.Background()

	in := subteam.SubTeam{
		ID:           "powertrain",
		Name:         "Powertrain",
		Icon:         "Zap",
		Description:  "Developing high-performance electric drive systems.",
		Goals:        []string{"a", "b"},
		Achievements: []string{"Fastest Acceleration Record (Student Category)"},
	}
	if err := repo.Upsert(ctx, in); err != nil {
		t.Fatalf("upsert sub-team: %v", err)
	}

	got, found, err := repo.GetByID(ctx, "powertrain")
	if err != nil {
		t.Fatalf("get sub-team: %v", err)
	}
	if !found {
		t.Fatal("expected sub-team to exist")
	}
	if len(got.Goals) != 2 || got.Goals[0] != "a" || got.Goals[1] != "b" {
		t.Fatalf("goals did not round-trip: %v", got.Goals)
	}
	if len(got.Achievements) != 1 {
		t.Fatalf("achievements did not round-trip: %v", got.Achievements)
	}
}

func TestSubTeamRepository_UpsertReplaces(t *testing.T) {
	store := openTestStore(t)
	repo := NewSubTeamRepository(store)
	ctx := context.Background()

	if err := repo.Upsert(ctx, subteam.SubTeam{ID: "rnd", Name: "R&D", Icon: "FlaskConical"}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(ctx, subteam.SubTeam{ID: "rnd", Name: "Research & Development", Icon: "FlaskConical"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list sub-teams: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single row after upsert, got %d", len(rows))
	}
	if rows[0].Name != "Research & Development" {
		t.Fatalf("upsert did not replace: %q", rows[0].Name)
	}
}

func TestSubTeamRepository_GetByID_Missing(t *testing.T) {
	store := openTestStore(t)
	repo := NewSubTeamRepository(store)

	_, found, err := repo.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("get missing sub-team: %v", err)
	}
	if found {
		t.Fatal("expected missing sub-team")
	}
}

func TestClear_EmptiesBothTables(t *testing.T) {
	store := openTestStore(t)
	memberRepo := NewMemberRepository(store)
	subTeamRepo := NewSubTeamRepository(store)
	ctx := context.Background()

	if err := memberRepo.Insert(ctx, member.Member{Name: "Tajbir Ahmed", Role: "TEAM LEAD", Subteam: "Leadership", ImagePath: "/assets/tajbir-ahmed.jpg"}); err != nil {
		t.Fatalf("insert member: %v", err)
	}
	if err := subTeamRepo.Upsert(ctx, subteam.SubTeam{ID: "management", Name: "Management", Icon: "Briefcase"}); err != nil {
		t.Fatalf("upsert sub-team: %v", err)
	}

	if err := memberRepo.Clear(ctx); err != nil {
		t.Fatalf("clear members: %v", err)
	}
	if err := subTeamRepo.Clear(ctx); err != nil {
		t.Fatalf("clear sub-teams: %v", err)
	}

	members, err := memberRepo.List(ctx)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	subTeams, err := subTeamRepo.List(ctx)
	if err != nil {
		t.Fatalf("list sub-teams: %v", err)
	}
	if len(members) != 0 || len(subTeams) != 0 {
		t.Fatalf("tables not empty after clear: %d members, %d sub-teams", len(members), len(subTeams))
	}
}
