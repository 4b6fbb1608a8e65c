package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/footynet/footynet/internal/domain/league"
	"github.com/footynet/footynet/internal/domain/standing"
	"github.com/footynet/footynet/internal/usecase"
)

type createLeagueRequest struct {
	Name string `json:"name" validate:"required,min=2,max=64"`
}

type leagueDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeamIDs   []string  `json:"teamIds"`
	CreatedAt time.Time `json:"createdAt"`
}

type standingDTO struct {
	TeamID         string `json:"teamId"`
	Position       int    `json:"position"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

func leagueToDTO(item league.League) leagueDTO {
	teamIDs := item.TeamIDs
	if teamIDs == nil {
		teamIDs = []string{}
	}
	return leagueDTO{
		ID:        item.ID,
		Name:      item.Name,
		TeamIDs:   teamIDs,
		CreatedAt: item.CreatedAt,
	}
}

func standingToDTO(row standing.Standing) standingDTO {
	return standingDTO{
		TeamID:         row.TeamID,
		Position:       row.Position,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
	}
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.CreateLeague(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	leagueID := r.PathValue("leagueID")
	teamID := r.PathValue("teamID")
	if err := h.leagueService.JoinLeague(ctx, leagueID, teamID, principal.UserID); err != nil {
		h.logger.WarnContext(ctx, "join league failed",
			"league_id", leagueID,
			"team_id", teamID,
			"user_id", principal.UserID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "joined"})
}

func (h *Handler) ListLeagueSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueSchedule")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	fixtures, err := h.leagueService.GetSchedule(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league schedule failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(fixtures))
	for _, m := range fixtures {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	rows, err := h.leagueService.GetStandings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
