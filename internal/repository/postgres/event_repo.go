package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
	"github.com/EC-WIN-24-NET/VoidMail/internal/result"
)

// CodeQueryFailed is the result error code for any failed event query.
const CodeQueryFailed = "EventRepository.QueryFailed"

var errQueryFailed = result.NewError(CodeQueryFailed, "failed to query events")

const eventColumns = `id, title, description, category, location, status, starts_at, ends_at, image_url, created_at, updated_at`

const packageColumns = `id, event_id, title, seating_arrangement, placement, price_minor, currency, discount_minor`

type eventRepository struct {
	DB     *sql.DB
	logger *slog.Logger
}

// NewEventRepository returns a Postgres-backed EventRepository. Rows are always read fresh, so
// trackChanges has no effect here.
func NewEventRepository(db *sql.DB, logger *slog.Logger) domain.EventRepository {
	return &eventRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *eventRepository) GetAll(ctx context.Context, filter domain.EventFilter, include ...string) ([]*domain.Event, error) {
	where, args := eventWhere(filter)
	query := `SELECT ` + eventColumns + ` FROM events` + where + ` ORDER BY starts_at, id`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	if slices.Contains(include, domain.IncludePackages) {
		if err := r.loadPackages(ctx, events); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (r *eventRepository) Get(ctx context.Context, filter domain.EventFilter, trackChanges bool, include ...string) result.RepositoryResult[*domain.Event] {
	where, args := eventWhere(filter)
	query := `SELECT ` + eventColumns + ` FROM events` + where + ` ORDER BY starts_at, id LIMIT 1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result.Absent[*domain.Event](http.StatusNotFound)
		}
		r.logger.ErrorContext(ctx, "event query failed", "filter_id", filter.ID, "err", err)
		return result.Failure[*domain.Event](errQueryFailed, http.StatusInternalServerError)
	}

	if slices.Contains(include, domain.IncludePackages) {
		if err := r.loadPackages(ctx, []*domain.Event{e}); err != nil {
			r.logger.ErrorContext(ctx, "event packages query failed", "event_id", e.ID, "err", err)
			return result.Failure[*domain.Event](errQueryFailed, http.StatusInternalServerError)
		}
	}
	return result.Success(e, http.StatusOK)
}

// loadPackages fills Packages on every event with one query. Events without packages get an empty slice.
func (r *eventRepository) loadPackages(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*domain.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		e.Packages = make([]*domain.Package, 0)
		byID[e.ID] = e
		ids = append(ids, e.ID.String())
	}

	query := `SELECT ` + packageColumns + ` FROM event_packages WHERE event_id = ANY($1) ORDER BY price_minor, title`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := &domain.Package{}
		var seating, placement sql.NullString
		var discount sql.NullInt64
		if err := rows.Scan(&p.ID, &p.EventID, &p.Title, &seating, &placement, &p.PriceMinor, &p.Currency, &discount); err != nil {
			return fmt.Errorf("scan package: %w", err)
		}
		p.SeatingArrangement = seating.String
		p.Placement = placement.String
		if discount.Valid {
			p.DiscountMinor = &discount.Int64
		}
		if e, ok := byID[p.EventID]; ok {
			e.Packages = append(e.Packages, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate packages: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var status string
	var descNull, categoryNull, locationNull, imageNull sql.NullString
	var endsNull sql.NullTime
	err := row.Scan(
		&e.ID, &e.Title, &descNull, &categoryNull, &locationNull, &status,
		&e.StartsAt, &endsNull, &imageNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	e.Description = descNull.String
	e.Category = categoryNull.String
	e.Location = locationNull.String
	e.ImageURL = imageNull.String
	if endsNull.Valid {
		e.EndsAt = &endsNull.Time
	}
	return e, nil
}

func eventWhere(filter domain.EventFilter) (string, []any) {
	var clauses []string
	var args []any
	n := 1
	if filter.ID != uuid.Nil {
		clauses = append(clauses, fmt.Sprintf("id = $%d", n))
		args = append(args, filter.ID.String())
		n++
	}
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = $%d", n))
		args = append(args, string(filter.Status))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
