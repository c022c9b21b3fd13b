package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/EC-WIN-24-NET/VoidMail/internal/delivery/http/controllers"
	"github.com/EC-WIN-24-NET/VoidMail/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, mailController *controllers.MailController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /event/GetAllEvents", eventController.GetAllEvents)
	mux.HandleFunc("GET /event/{guid}", eventController.GetEventByGuid)

	// Mail
	mux.HandleFunc("POST /mail", mailController.SendMail)
	mux.HandleFunc("POST /mail/event/{guid}", mailController.SendEventDetails)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Prometheus
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// NewHandler wraps the router with the middleware chain: metrics, request logging, then CORS.
func NewHandler(mux *http.ServeMux, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.Metrics(middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux)))
}
