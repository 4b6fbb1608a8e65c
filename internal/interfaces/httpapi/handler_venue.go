package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/footynet/footynet/internal/domain/venue"
	"github.com/footynet/footynet/internal/usecase"
)

type venueDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	PricePerHour *float64  `json:"pricePerHour,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type venueCandidateDTO struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func venueToDTO(item venue.Venue) venueDTO {
	return venueDTO{
		ID:           item.ID,
		Name:         item.Name,
		Address:      item.Address,
		PricePerHour: item.PricePerHour,
		CreatedAt:    item.CreatedAt,
	}
}

func (h *Handler) SearchNearbyVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchNearbyVenues")
	defer span.End()

	lat, err := parseOptionalFloat(r.URL.Query().Get("lat"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed lat", usecase.ErrInvalidInput))
		return
	}
	lng, err := parseOptionalFloat(r.URL.Query().Get("lng"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed lng", usecase.ErrInvalidInput))
		return
	}
	radius := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("radius")); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil || radius < 0 {
			writeError(ctx, w, fmt.Errorf("%w: malformed radius", usecase.ErrInvalidInput))
			return
		}
	}

	candidates, err := h.venueService.SearchNearby(ctx, resolveClientIP(r), lat, lng, radius)
	if err != nil {
		h.logger.WarnContext(ctx, "nearby venue search failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]venueCandidateDTO, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, venueCandidateDTO{
			Name:      candidate.Name,
			Address:   candidate.Address,
			Latitude:  candidate.Latitude,
			Longitude: candidate.Longitude,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
