package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/footynet/footynet/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	authService   *usecase.AuthService
	teamService   *usecase.TeamService
	matchService  *usecase.MatchService
	leagueService *usecase.LeagueService
	venueService  *usecase.VenueService
	logger        *slog.Logger
	validator     *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	leagueService *usecase.LeagueService,
	venueService *usecase.VenueService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:   authService,
		teamService:   teamService,
		matchService:  matchService,
		leagueService: leagueService,
		venueService:  venueService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(r *http.Request, target any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: malformed request body", usecase.ErrInvalidInput)
	}
	if err := h.validator.Struct(target); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
