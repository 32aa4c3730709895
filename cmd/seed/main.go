// Command seed resets the roster database to the published dataset. Safe to
// run repeatedly: every run clears both tables first and reinserts the same
// rows with the same ids.
package main

import (
	"context"
	"os"
	"time"

	"github.com/team-oshsharohi/roster-service/internal/config"
	"github.com/team-oshsharohi/roster-service/internal/infrastructure/repository/memory"
	"github.com/team-oshsharohi/roster-service/internal/infrastructure/repository/sqlite"
	"github.com/team-oshsharohi/roster-service/internal/platform/logging"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open roster store", "db_path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	seedSvc := usecase.NewSeedService(
		sqlite.NewMemberRepository(store),
		sqlite.NewSubTeamRepository(store),
		logger,
	)

	result, err := seedSvc.Seed(ctx, memory.SeedMembers(), memory.SeedSubTeams())
	if err != nil {
		logger.Error("seed roster", "error", err)
		os.Exit(1)
	}

	logger.Info("seed complete",
		"db_path", cfg.DBPath,
		"members", result.MembersInserted,
		"sub_teams", result.SubTeamsUpserted,
	)
}
