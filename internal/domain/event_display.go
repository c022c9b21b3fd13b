package domain

import "github.com/google/uuid"

// EventDisplay is the caller-facing projection of an Event.
// swagger:model EventDisplay
type EventDisplay struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Location    string           `json:"location"`
	Status      string           `json:"status"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	EndsAt      string           `json:"endsAt,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Packages    []PackageDisplay `json:"packages"`
}

// PackageDisplay is the caller-facing projection of a Package.
// swagger:model PackageDisplay
type PackageDisplay struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	SeatingArrangement string    `json:"seatingArrangement"`
	Placement          string    `json:"placement"`
	Price              string    `json:"price"`
	DiscountedPrice    string    `json:"discountedPrice,omitempty"`
}

// EventDisplayFactory converts a fully loaded Event into its display shape.
type EventDisplayFactory interface {
	ToDisplay(e *Event) (EventDisplay, error)
}

// PackageDisplayFactory converts a Package into its display shape.
type PackageDisplayFactory interface {
	ToDisplay(p *Package) PackageDisplay
}
