package factories

import (
	"fmt"
	"time"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

const (
	displayDateLayout = "2006-01-02"
	displayTimeLayout = "15:04"
)

type eventDisplayFactory struct {
	packages domain.PackageDisplayFactory
	location *time.Location
}

// NewEventDisplayFactory returns a factory that formats dates in loc (UTC when nil)
// and delegates package conversion to packages.
func NewEventDisplayFactory(packages domain.PackageDisplayFactory, loc *time.Location) domain.EventDisplayFactory {
	if loc == nil {
		loc = time.UTC
	}
	return &eventDisplayFactory{packages: packages, location: loc}
}

func (f *eventDisplayFactory) ToDisplay(e *domain.Event) (domain.EventDisplay, error) {
	if e == nil {
		return domain.EventDisplay{}, fmt.Errorf("convert event: nil event")
	}
	if !e.PackagesLoaded() {
		return domain.EventDisplay{}, fmt.Errorf("convert event %s: %w", e.ID, domain.ErrPackagesNotLoaded)
	}

	starts := e.StartsAt.In(f.location)
	d := domain.EventDisplay{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Location:    e.Location,
		Status:      string(e.Status),
		Date:        starts.Format(displayDateLayout),
		Time:        starts.Format(displayTimeLayout),
		ImageURL:    e.ImageURL,
		Packages:    make([]domain.PackageDisplay, 0, len(e.Packages)),
	}
	if e.EndsAt != nil {
		d.EndsAt = e.EndsAt.In(f.location).Format(time.RFC3339)
	}
	for _, p := range e.Packages {
		if p == nil {
			continue
		}
		d.Packages = append(d.Packages, f.packages.ToDisplay(p))
	}
	return d, nil
}
