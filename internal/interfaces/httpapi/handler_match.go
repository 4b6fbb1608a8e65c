package httpapi

import (
	"net/http"
	"time"

	"github.com/footynet/footynet/internal/domain/match"
)

type scheduleMatchRequest struct {
	HomeTeamID string    `json:"homeTeamId" validate:"required"`
	AwayTeamID string    `json:"awayTeamId" validate:"required"`
	KickoffAt  time.Time `json:"kickoffAt" validate:"required"`
}

type recordResultRequest struct {
	HomeGoals int `json:"homeGoals" validate:"min=0"`
	AwayGoals int `json:"awayGoals" validate:"min=0"`
}

type bookVenueRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=128"`
	Address      string   `json:"address" validate:"required,min=2,max=256"`
	PricePerHour *float64 `json:"pricePerHour,omitempty" validate:"omitempty,gte=0"`
}

type matchDTO struct {
	ID         string    `json:"id"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	KickoffAt  time.Time `json:"kickoffAt"`
	VenueID    *string   `json:"venueId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:         item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		KickoffAt:  item.KickoffAt,
		VenueID:    item.VenueID,
		CreatedAt:  item.CreatedAt,
	}
}

func (h *Handler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleMatch")
	defer span.End()

	var req scheduleMatchRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.ScheduleMatch(ctx, req.HomeTeamID, req.AwayTeamID, req.KickoffAt)
	if err != nil {
		h.logger.WarnContext(ctx, "schedule match failed",
			"home_team_id", req.HomeTeamID,
			"away_team_id", req.AwayTeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req recordResultRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.RecordResult(ctx, matchID, req.HomeGoals, req.AwayGoals); err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (h *Handler) BookMatchVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BookMatchVenue")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req bookVenueRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	booked, err := h.matchService.BookVenue(ctx, matchID, req.Name, req.Address, req.PricePerHour)
	if err != nil {
		h.logger.WarnContext(ctx, "book venue failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, venueToDTO(booked))
}

func (h *Handler) ListTeamMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMatches")
	defer span.End()

	teamID := r.PathValue("teamID")
	matches, err := h.matchService.ListTeamMatches(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team matches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
