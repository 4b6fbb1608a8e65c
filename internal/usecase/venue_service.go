package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/footynet/footynet/internal/domain/venue"
	"github.com/footynet/footynet/internal/platform/cache"
)

// PlacesClient searches the maps provider for pitches around a point and
// resolves coordinates to addresses.
type PlacesClient interface {
	SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]venue.Candidate, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// GeoResolver maps a network address to approximate coordinates.
type GeoResolver interface {
	Locate(ctx context.Context, ip string) (lat, lng float64, err error)
}

const defaultSearchRadiusMeters = 5000

type VenueService struct {
	places PlacesClient
	geo    GeoResolver
	cache  *cache.Store
	logger *slog.Logger
}

func NewVenueService(places PlacesClient, geo GeoResolver, store *cache.Store, logger *slog.Logger) *VenueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VenueService{
		places: places,
		geo:    geo,
		cache:  store,
		logger: logger,
	}
}

// SearchNearby returns operating pitches around the given point. When no
// coordinates are supplied the client IP is resolved to approximate ones.
// Results are cached per rounded point and radius.
func (s *VenueService) SearchNearby(ctx context.Context, clientIP string, lat, lng *float64, radiusMeters int) ([]venue.Candidate, error) {
	if s.places == nil {
		return nil, fmt.Errorf("%w: venue search is not configured", ErrDependencyUnavailable)
	}
	if radiusMeters <= 0 {
		radiusMeters = defaultSearchRadiusMeters
	}

	var pointLat, pointLng float64
	switch {
	case lat != nil && lng != nil:
		pointLat, pointLng = *lat, *lng
	case s.geo != nil && clientIP != "":
		resolvedLat, resolvedLng, err := s.geo.Locate(ctx, clientIP)
		if err != nil {
			return nil, fmt.Errorf("%w: resolve client location: %v", ErrDependencyUnavailable, err)
		}
		pointLat, pointLng = resolvedLat, resolvedLng
	default:
		return nil, fmt.Errorf("%w: coordinates or a resolvable client address are required", ErrInvalidInput)
	}
	if pointLat < -90 || pointLat > 90 || pointLng < -180 || pointLng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		candidates, err := s.places.SearchNearby(ctx, pointLat, pointLng, radiusMeters)
		if err != nil {
			return nil, fmt.Errorf("%w: venue search: %v", ErrDependencyUnavailable, err)
		}
		s.fillAddresses(ctx, candidates)
		return candidates, nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]venue.Candidate), nil
	}

	key := fmt.Sprintf("venues:%.3f:%.3f:%d", pointLat, pointLng, radiusMeters)
	value, err := s.cache.GetOrLoad(ctx, key, load)
	if err != nil {
		return nil, err
	}

	candidates, _ := value.([]venue.Candidate)
	return candidates, nil
}

func (s *VenueService) fillAddresses(ctx context.Context, candidates []venue.Candidate) {
	for i := range candidates {
		if candidates[i].Address != "" {
			continue
		}
		address, err := s.places.ReverseGeocode(ctx, candidates[i].Latitude, candidates[i].Longitude)
		if err != nil {
			s.logger.WarnContext(ctx, "reverse geocode failed",
				"lat", candidates[i].Latitude,
				"lng", candidates[i].Longitude,
				"error", err,
			)
			continue
		}
		candidates[i].Address = address
	}
}
