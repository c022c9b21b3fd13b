package factories

import (
	"fmt"
	"strings"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

type packageDisplayFactory struct{}

// NewPackageDisplayFactory returns the package display factory.
func NewPackageDisplayFactory() domain.PackageDisplayFactory {
	return packageDisplayFactory{}
}

func (packageDisplayFactory) ToDisplay(p *domain.Package) domain.PackageDisplay {
	d := domain.PackageDisplay{
		ID:                 p.ID,
		Title:              p.Title,
		SeatingArrangement: p.SeatingArrangement,
		Placement:          p.Placement,
		Price:              formatPrice(p.PriceMinor, p.Currency),
	}
	if p.DiscountMinor != nil && *p.DiscountMinor > 0 {
		discounted := p.PriceMinor - *p.DiscountMinor
		if discounted < 0 {
			discounted = 0
		}
		d.DiscountedPrice = formatPrice(discounted, p.Currency)
	}
	return d
}

// formatPrice renders minor units as "499.00 SEK".
func formatPrice(minor int64, currency string) string {
	sign, abs := "", uint64(minor)
	if minor < 0 {
		// exact for math.MinInt64
		sign, abs = "-", -abs
	}
	s := fmt.Sprintf("%s%d.%02d", sign, abs/100, abs%100)
	if c := strings.ToUpper(strings.TrimSpace(currency)); c != "" {
		s += " " + c
	}
	return s
}
