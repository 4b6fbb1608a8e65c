package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/footynet/footynet/internal/domain/venue"
)

type VenueRepository struct {
	mu    sync.RWMutex
	items map[string]venue.Venue
}

func NewVenueRepository() *VenueRepository {
	return &VenueRepository{items: make(map[string]venue.Venue)}
}

func (r *VenueRepository) Create(_ context.Context, item venue.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("venue %s already exists", item.ID)
	}

	r.items[item.ID] = cloneVenue(item)
	return nil
}

func (r *VenueRepository) GetByID(_ context.Context, venueID string) (venue.Venue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[venueID]
	if !ok {
		return venue.Venue{}, false, nil
	}

	return cloneVenue(item), true, nil
}

func (r *VenueRepository) Delete(_ context.Context, venueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, venueID)
	return nil
}

func cloneVenue(item venue.Venue) venue.Venue {
	copied := item
	if item.PricePerHour != nil {
		price := *item.PricePerHour
		copied.PricePerHour = &price
	}
	return copied
}
