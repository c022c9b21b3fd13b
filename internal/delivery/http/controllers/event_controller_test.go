package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
	"github.com/EC-WIN-24-NET/VoidMail/internal/result"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	all      result.RepositoryResult[[]domain.EventDisplay]
	byID     result.RepositoryResult[domain.EventDisplay]
	lastID   uuid.UUID
	getCalls int
}

func (f *fakeEventService) GetAllEvents(ctx context.Context) result.RepositoryResult[[]domain.EventDisplay] {
	return f.all
}

func (f *fakeEventService) GetEventByGuid(ctx context.Context, id uuid.UUID) result.RepositoryResult[domain.EventDisplay] {
	f.getCalls++
	f.lastID = id
	return f.byID
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func eventMux(c *EventController) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /event/GetAllEvents", c.GetAllEvents)
	mux.HandleFunc("GET /event/{guid}", c.GetEventByGuid)
	return mux
}

func TestEventController_GetEventByGuid(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		path       string
		byID       result.RepositoryResult[domain.EventDisplay]
		wantStatus int
		wantCode   string
		wantCalled bool
	}{
		{
			name:       "found",
			path:       "/event/" + id.String(),
			byID:       result.Success(domain.EventDisplay{ID: id, Title: "Void Fest"}, http.StatusOK),
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "not found",
			path:       "/event/" + id.String(),
			byID:       result.Failure[domain.EventDisplay](result.NotFound("Event is not found"), http.StatusNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "General.NotFound",
			wantCalled: true,
		},
		{
			name:       "service error",
			path:       "/event/" + id.String(),
			byID:       result.Failure[domain.EventDisplay](result.NewError("Event.RetrievalError", "An error occurred while retrieving the event"), http.StatusInternalServerError),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "Event.RetrievalError",
			wantCalled: true,
		},
		{
			name:       "nil guid",
			path:       "/event/" + uuid.Nil.String(),
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "not a guid",
			path:       "/event/not-a-guid",
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{byID: tt.byID}
			mux := eventMux(NewEventController(testLogger, svc))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, svc.getCalls == 1)
			env := decode(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				if tt.wantStatus == http.StatusBadRequest {
					assert.Equal(t, "Invalid Guid provided.", env.Error.Message)
				}
				return
			}
			assert.Nil(t, env.Error)
			assert.Equal(t, id, svc.lastID)
			var got domain.EventDisplay
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, "Void Fest", got.Title)
		})
	}
}

func TestEventController_GetAllEvents(t *testing.T) {
	tests := []struct {
		name       string
		all        result.RepositoryResult[[]domain.EventDisplay]
		wantStatus int
		wantCode   string
		wantLen    int
	}{
		{
			name:       "events",
			all:        result.Success([]domain.EventDisplay{{Title: "A"}, {Title: "B"}}, http.StatusOK),
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name:       "empty is not found",
			all:        result.Success([]domain.EventDisplay{}, http.StatusOK),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "failure is mapped",
			all:        result.Failure[[]domain.EventDisplay](result.NewError("EventService.GetAll.Exception", "An error occurred while retrieving events"), http.StatusInternalServerError),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "EventService.GetAll.Exception",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := eventMux(NewEventController(testLogger, &fakeEventService{all: tt.all}))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/event/GetAllEvents", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decode(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			var got []domain.EventDisplay
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Len(t, got, tt.wantLen)
		})
	}
}
