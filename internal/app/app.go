package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/footynet/footynet/internal/config"
	"github.com/footynet/footynet/internal/domain/league"
	"github.com/footynet/footynet/internal/domain/match"
	"github.com/footynet/footynet/internal/domain/standing"
	"github.com/footynet/footynet/internal/domain/team"
	"github.com/footynet/footynet/internal/domain/user"
	"github.com/footynet/footynet/internal/domain/venue"
	"github.com/footynet/footynet/internal/infrastructure/geoip"
	"github.com/footynet/footynet/internal/infrastructure/mailer"
	"github.com/footynet/footynet/internal/infrastructure/places"
	"github.com/footynet/footynet/internal/infrastructure/repository/memory"
	"github.com/footynet/footynet/internal/infrastructure/repository/postgres"
	"github.com/footynet/footynet/internal/interfaces/httpapi"
	"github.com/footynet/footynet/internal/jobs"
	"github.com/footynet/footynet/internal/platform/cache"
	idgen "github.com/footynet/footynet/internal/platform/id"
	"github.com/footynet/footynet/internal/platform/logging"
	"github.com/footynet/footynet/internal/usecase"
)

// App bundles the HTTP server with the background sweeper and the database
// handle so main can start and stop everything in one place.
type App struct {
	Server *http.Server

	sweeper *jobs.Sweeper
	db      *sqlx.DB
	logger  *slog.Logger
}

// New wires repositories, services, outbound clients, and the router. With an
// empty DB_URL the service runs entirely on in-memory repositories.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, platformLogger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if platformLogger == nil {
		platformLogger = logging.NewNop()
	}

	var (
		db           *sqlx.DB
		userRepo     user.Repository
		teamRepo     team.Repository
		matchRepo    match.Repository
		venueRepo    venue.Repository
		leagueRepo   league.Repository
		standingRepo standing.Repository
	)

	if cfg.DBURL != "" {
		opened, err := openDB(ctx, cfg.DBURL, cfg.DBDisablePreparedBinary)
		if err != nil {
			return nil, err
		}
		db = opened
		userRepo = postgres.NewUserRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
		venueRepo = postgres.NewVenueRepository(db)
		leagueRepo = postgres.NewLeagueRepository(db)
		standingRepo = postgres.NewStandingRepository(db)
		logger.Info("storage configured", "backend", "postgres", "db", dbNameFromURL(cfg.DBURL))
	} else {
		userRepo = memory.NewUserRepository()
		teamRepo = memory.NewTeamRepository()
		matchRepo = memory.NewMatchRepository()
		venueRepo = memory.NewVenueRepository()
		leagueRepo = memory.NewLeagueRepository()
		standingRepo = memory.NewStandingRepository()
		logger.Info("storage configured", "backend", "memory")
	}

	idGen := idgen.NewUUIDGenerator()

	var notifier usecase.Notifier
	if cfg.MailerEnabled {
		notifier = mailer.NewClient(mailer.ClientConfig{
			BaseURL:        cfg.MailerBaseURL,
			Token:          cfg.MailerToken,
			FromAddress:    cfg.MailerFromAddress,
			Timeout:        cfg.MailerTimeout,
			CircuitBreaker: cfg.MailerCircuit,
		}, logger)
	}

	placesClient := places.NewClient(places.ClientConfig{
		BaseURL:        cfg.PlacesBaseURL,
		APIKey:         cfg.PlacesAPIKey,
		Timeout:        cfg.PlacesTimeout,
		MaxRetries:     cfg.PlacesMaxRetries,
		Logger:         platformLogger,
		CircuitBreaker: cfg.PlacesCircuit,
	})
	geoClient := geoip.NewClient(geoip.ClientConfig{
		BaseURL:        cfg.GeoIPBaseURL,
		Timeout:        cfg.GeoIPTimeout,
		Logger:         platformLogger,
		CircuitBreaker: cfg.GeoIPCircuit,
	})

	authSvc := usecase.NewAuthService(userRepo, idGen, cfg.JWTSecret, cfg.JWTTokenTTL)
	teamSvc := usecase.NewTeamService(teamRepo, userRepo, idGen)
	standingSvc := usecase.NewStandingService(standingRepo)
	leagueSvc := usecase.NewLeagueService(leagueRepo, teamRepo, matchRepo, standingRepo, standingSvc, idGen)
	matchSvc := usecase.NewMatchService(
		matchRepo,
		venueRepo,
		teamRepo,
		userRepo,
		leagueRepo,
		standingSvc,
		notifier,
		idGen,
		logger,
	)
	venueSvc := usecase.NewVenueService(placesClient, geoClient, cache.NewStore(cfg.CacheTTL), logger)

	handler := httpapi.NewHandler(authSvc, teamSvc, matchSvc, leagueSvc, venueSvc, logger)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var sweeper *jobs.Sweeper
	if cfg.SweepEnabled {
		built, err := jobs.NewSweeper(teamRepo, matchSvc, cfg.SweepInterval, cfg.SweepWorkers, logger)
		if err != nil {
			return nil, fmt.Errorf("build sweeper: %w", err)
		}
		sweeper = built
	}

	return &App{
		Server:  server,
		sweeper: sweeper,
		db:      db,
		logger:  logger,
	}, nil
}

// Start launches the background sweeper. The HTTP server is started by the
// caller so it controls the listen error path.
func (a *App) Start() error {
	if a.sweeper == nil {
		return nil
	}
	return a.sweeper.Start()
}

func (a *App) Close() error {
	var firstErr error
	if a.sweeper != nil {
		if err := a.sweeper.Stop(); err != nil {
			firstErr = err
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
