package cached

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
	"github.com/EC-WIN-24-NET/VoidMail/internal/metrics"
	"github.com/EC-WIN-24-NET/VoidMail/internal/result"
)

// Cache lookup results used as the "result" label.
const (
	lookupHit    = "hit"
	lookupMiss   = "miss"
	lookupBypass = "bypass"
)

// eventRepository serves no-tracking single-event reads by ID from an in-memory TTL cache.
type eventRepository struct {
	next  domain.EventRepository
	cache *gocache.Cache
}

// NewEventRepository wraps next with a read cache holding entries for ttl.
func NewEventRepository(next domain.EventRepository, ttl time.Duration) domain.EventRepository {
	return &eventRepository{next: next, cache: gocache.New(ttl, 2*ttl)}
}

// GetAll is never cached.
func (r *eventRepository) GetAll(ctx context.Context, filter domain.EventFilter, include ...string) ([]*domain.Event, error) {
	return r.next.GetAll(ctx, filter, include...)
}

func (r *eventRepository) Get(ctx context.Context, filter domain.EventFilter, trackChanges bool, include ...string) result.RepositoryResult[*domain.Event] {
	key, cacheable := cacheKey(filter, include)
	if !cacheable {
		metrics.EventCacheTotal.WithLabelValues(lookupBypass).Inc()
		return r.next.Get(ctx, filter, trackChanges, include...)
	}

	if !trackChanges {
		if v, ok := r.cache.Get(key); ok {
			if e, ok := v.(*domain.Event); ok {
				metrics.EventCacheTotal.WithLabelValues(lookupHit).Inc()
				return result.Success(cloneEvent(e), http.StatusOK)
			}
		}
		metrics.EventCacheTotal.WithLabelValues(lookupMiss).Inc()
	} else {
		metrics.EventCacheTotal.WithLabelValues(lookupBypass).Inc()
	}

	res := r.next.Get(ctx, filter, trackChanges, include...)
	if e, ok := res.Value(); ok && e != nil && res.IsSuccess() {
		r.cache.SetDefault(key, cloneEvent(e))
	} else if res.StatusCode() == http.StatusNotFound {
		r.cache.Delete(key)
	}
	return res
}

// cacheKey returns the key for a lookup by ID only.
func cacheKey(filter domain.EventFilter, include []string) (string, bool) {
	if filter.ID == uuid.Nil || filter.Status != "" {
		return "", false
	}
	paths := slices.Clone(include)
	slices.Sort(paths)
	paths = slices.Compact(paths)
	return "event:" + filter.ID.String() + ":" + strings.Join(paths, ","), true
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	if e.EndsAt != nil {
		ends := *e.EndsAt
		c.EndsAt = &ends
	}
	if e.Packages != nil {
		c.Packages = make([]*domain.Package, 0, len(e.Packages))
		for _, p := range e.Packages {
			if p == nil {
				c.Packages = append(c.Packages, nil)
				continue
			}
			pc := *p
			if p.DiscountMinor != nil {
				d := *p.DiscountMinor
				pc.DiscountMinor = &d
			}
			c.Packages = append(c.Packages, &pc)
		}
	}
	return &c
}
