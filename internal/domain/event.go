package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/EC-WIN-24-NET/VoidMail/internal/result"
)

// ErrPackagesNotLoaded is returned when an event is converted before its packages were eager loaded.
var ErrPackagesNotLoaded = errors.New("event packages not loaded")

// IncludePackages is the eager-load path for an event's packages.
const IncludePackages = "Packages"

// EventStatus is the publication state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event represents a bookable event
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	Location    string
	Status      EventStatus
	StartsAt    time.Time
	EndsAt      *time.Time
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Packages is nil until the repository loads it; a loaded event with no packages has an empty slice.
	Packages []*Package
}

// PackagesLoaded reports whether the packages collection was eager loaded.
func (e *Event) PackagesLoaded() bool {
	return e.Packages != nil
}

// Package is a ticket package sold for an event. Prices are in minor currency units.
type Package struct {
	ID                 uuid.UUID
	EventID            uuid.UUID
	Title              string
	SeatingArrangement string
	Placement          string
	PriceMinor         int64
	Currency           string
	DiscountMinor      *int64
}

// EventFilter selects events. Zero fields match everything.
type EventFilter struct {
	ID     uuid.UUID
	Status EventStatus
}

// AllEvents matches every event.
var AllEvents = EventFilter{}

// Matches reports whether e satisfies the filter. Nil events never match.
func (f EventFilter) Matches(e *Event) bool {
	if e == nil {
		return false
	}
	if f.ID != uuid.Nil && e.ID != f.ID {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	return true
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// GetAll returns every event matching filter. The slice is not guaranteed to be free of nil entries.
	GetAll(ctx context.Context, filter EventFilter, include ...string) ([]*Event, error)
	// Get returns the first event matching filter. No match is reported as result.Absent with status 404.
	Get(ctx context.Context, filter EventFilter, trackChanges bool, include ...string) result.RepositoryResult[*Event]
}

// EventService defines the read operations exposed to controllers.
type EventService interface {
	GetAllEvents(ctx context.Context) result.RepositoryResult[[]EventDisplay]
	// GetEventByGuid expects a non-nil id; callers validate it.
	GetEventByGuid(ctx context.Context, id uuid.UUID) result.RepositoryResult[EventDisplay]
}
