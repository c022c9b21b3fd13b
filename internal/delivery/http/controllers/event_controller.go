package controllers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/EC-WIN-24-NET/VoidMail/internal/delivery/http/helpers"
	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

// GetEventSuccessResponse is the success response envelope for GET /event/{guid} (200).
type GetEventSuccessResponse struct {
	Data  domain.EventDisplay `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GetAllEventsSuccessResponse is the success response envelope for GET /event/GetAllEvents (200).
type GetAllEventsSuccessResponse struct {
	Data  []domain.EventDisplay `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// GetEventByGuid godoc
// @Summary Get an event by guid
// @Description Returns the display form of one event, including its ticket packages.
// @Tags event
// @Produce json
// @Param guid path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: General.NotFound"
// @Failure 500 {object} helpers.APIResponse "error.code: Event.RetrievalError, EventService.UnexpectedState or EventRepository.QueryFailed"
// @Router /event/{guid} [get]
func (c *EventController) GetEventByGuid(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGuid(r.PathValue("guid"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Invalid Guid provided.")
		return
	}
	res := c.Service.GetEventByGuid(r.Context(), id)
	if res.IsFailure() && res.StatusCode() >= http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "code", res.Err().Code)
	}
	helpers.WriteResult(w, res)
}

// GetAllEvents godoc
// @Summary List all events
// @Description Returns every event in display form. An empty catalogue is reported as 404.
// @Tags event
// @Produce json
// @Success 200 {object} controllers.GetAllEventsSuccessResponse "data contains the events"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: EventService.GetAll.Exception"
// @Router /event/GetAllEvents [get]
func (c *EventController) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	res := c.Service.GetAllEvents(r.Context())
	if res.IsFailure() {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "code", res.Err().Code)
		helpers.WriteResult(w, res)
		return
	}
	events, ok := res.Value()
	if !ok || len(events) == 0 {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "No Events found")
		return
	}
	helpers.WriteResult(w, res)
}

// parseGuid accepts any uuid form uuid.Parse understands, except the nil uuid.
func parseGuid(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
