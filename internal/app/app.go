package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hoopqueens/boxscore/external/openai"
	"github.com/hoopqueens/boxscore/internal/config"
	"github.com/hoopqueens/boxscore/internal/infrastructure/repository/sqlite"
	"github.com/hoopqueens/boxscore/internal/interfaces/httpapi"
	"github.com/hoopqueens/boxscore/internal/platform/logging"
	"github.com/hoopqueens/boxscore/internal/platform/snapshot"
	"github.com/hoopqueens/boxscore/internal/usecase"
)

// NewHTTPServer wires the whole service: sqlite store, snapshot
// manager, extraction client, use cases and the HTTP router. The
// returned closer releases the store connection.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := sqlite.Open(ctx, cfg.DBURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	if err := sqlite.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	teamRepo := sqlite.NewTeamRepository(db)
	playerRepo := sqlite.NewPlayerRepository(db)
	gameRepo := sqlite.NewGameRepository(db)
	boxRepo := sqlite.NewBoxScoreRepository(db)

	storePath := snapshot.StorePathFromDSN(cfg.DBURL)
	snapshots := snapshot.NewManager(cfg.SnapshotDir, storePath, logger)
	if storePath == "" {
		logger.Warn("store is not file-backed, snapshots disabled", "db_url", cfg.DBURL)
	} else if count, totalBytes := snapshots.Stats(); count > 0 {
		logger.Info("existing snapshots found",
			"dir", cfg.SnapshotDir,
			"count", count,
			"total_bytes", totalBytes,
		)
	}

	extractor := openai.NewClient(openai.ClientConfig{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.OpenAITimeout,
		Logger:  logger,
	})
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, document extraction will be unavailable")
	}

	refSvc := usecase.NewReferenceService(teamRepo, playerRepo)
	directorySvc := usecase.NewDirectoryService(teamRepo, playerRepo, gameRepo, boxRepo)
	statsEntrySvc := usecase.NewStatsEntryService(gameRepo, boxRepo, refSvc, snapshots, logger)
	extractionSvc := usecase.NewExtractionService(refSvc, extractor, logger)
	reportSvc := usecase.NewReportService(teamRepo, playerRepo, gameRepo, boxRepo)

	handler := httpapi.NewHandler(directorySvc, statsEntrySvc, extractionSvc, reportSvc, cfg.MaxUploadBytes, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db.Close, nil
}
