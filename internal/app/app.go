// Package app assembles the storage, services, and HTTP surface.
package app

import (
	"fmt"
	"net/http"

	"github.com/team-oshsharohi/roster-service/internal/config"
	"github.com/team-oshsharohi/roster-service/internal/domain/subteam"
	"github.com/team-oshsharohi/roster-service/internal/infrastructure/repository/sqlite"
	"github.com/team-oshsharohi/roster-service/internal/interfaces/httpapi"
	"github.com/team-oshsharohi/roster-service/internal/platform/logging"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

// App owns the sqlite store alongside the HTTP server so both shut down
// together.
type App struct {
	Server *http.Server
	store  *sqlite.Store
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open roster store: %w", err)
	}

	memberRepo := sqlite.NewMemberRepository(store)
	subTeamRepo := sqlite.NewSubTeamRepository(store)

	rosterSvc := usecase.NewRosterService(memberRepo, subTeamRepo, subteam.DefaultAliasTable())

	handler := httpapi.NewHandler(rosterSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AssetsDir)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{Server: server, store: store}, nil
}

// Close releases the sqlite handle. Call after the HTTP server has drained.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}
