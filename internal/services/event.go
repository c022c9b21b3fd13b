package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
	"github.com/EC-WIN-24-NET/VoidMail/internal/result"
)

// Error codes produced by the event service.
const (
	CodeGetAllException  = "EventService.GetAll.Exception"
	CodeUnexpectedState  = "EventService.UnexpectedState"
	CodeRetrievalError   = "Event.RetrievalError"
	msgEventNotFound     = "Event is not found"
	msgGetAllFailed      = "failed to retrieve events"
	msgRetrievalFailed   = "An error occurred while retrieving the event"
	msgUnexpectedRepoRes = "repository returned neither an event, an error nor not found"
)

type eventService struct {
	eventRepo      domain.EventRepository
	displays       domain.EventDisplayFactory
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	displays domain.EventDisplayFactory,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		displays:       displays,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) GetAllEvents(ctx context.Context) (res result.RepositoryResult[[]domain.EventDisplay]) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	fail := func(cause any) result.RepositoryResult[[]domain.EventDisplay] {
		s.logger.ErrorContext(ctx, "get all events failed", "err", cause)
		return result.Failure[[]domain.EventDisplay](result.NewError(CodeGetAllException, msgGetAllFailed), http.StatusInternalServerError)
	}
	defer func() {
		if r := recover(); r != nil {
			res = fail(fmt.Sprintf("panic: %v", r))
		}
	}()

	events, err := s.eventRepo.GetAll(ctx, domain.AllEvents, domain.IncludePackages)
	if err != nil {
		return fail(err)
	}

	displays := make([]domain.EventDisplay, 0, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		d, err := s.displays.ToDisplay(e)
		if err != nil {
			return fail(err)
		}
		displays = append(displays, d)
	}
	return result.Success(displays, http.StatusOK)
}

func (s *eventService) GetEventByGuid(ctx context.Context, id uuid.UUID) (res result.RepositoryResult[domain.EventDisplay]) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	fail := func(cause any) result.RepositoryResult[domain.EventDisplay] {
		s.logger.ErrorContext(ctx, "get event failed", "event_id", id, "err", cause)
		return result.Failure[domain.EventDisplay](result.NewError(CodeRetrievalError, msgRetrievalFailed), http.StatusInternalServerError)
	}
	defer func() {
		if r := recover(); r != nil {
			res = fail(fmt.Sprintf("panic: %v", r))
		}
	}()

	repoRes := s.eventRepo.Get(ctx, domain.EventFilter{ID: id}, false, domain.IncludePackages)

	if repoErr := repoRes.Err(); !repoErr.IsNone() {
		return result.Failure[domain.EventDisplay](repoErr, repoRes.StatusCode())
	}
	if event, ok := repoRes.Value(); ok && event != nil {
		d, err := s.displays.ToDisplay(event)
		if err != nil {
			return fail(err)
		}
		return result.Success(d, repoRes.StatusCode())
	}
	if repoRes.StatusCode() == http.StatusNotFound {
		return result.Failure[domain.EventDisplay](result.NotFound(msgEventNotFound), http.StatusNotFound)
	}
	s.logger.ErrorContext(ctx, "unexpected repository state", "event_id", id, "status", repoRes.StatusCode())
	return result.Failure[domain.EventDisplay](result.NewError(CodeUnexpectedState, msgUnexpectedRepoRes), http.StatusInternalServerError)
}
