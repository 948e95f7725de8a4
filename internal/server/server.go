package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parking-garage/internal/logging"
	"parking-garage/internal/parking"
)

type Server struct {
	httpServer *http.Server
	handler    *Handler
}

func NewServer(port string, service *parking.InstrumentedTicketService, serviceName string) *Server {
	handler := NewHandler(service, serviceName)

	r := chi.NewRouter()

	r.Use(RecoveryMiddleware)
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(TracingMiddleware)
	r.Use(CORSMiddleware)

	r.Get("/health", handler.HealthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/parking-lot", func(r chi.Router) {
		r.Post("/tickets", handler.IssueTicket)
		r.Post("/unpark", handler.UnparkVehicle)
		r.Post("/bills/{billID}/payments", handler.RecordPayment)
		r.Get("/availability/{vehicleType}", handler.GetAvailability)
		r.Get("/status", handler.GetStatus)
		r.Put("/strategy", handler.SetStrategy)
	})

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
	}
}

func (s *Server) Start() error {
	logging.Logger().Info().Str("addr", s.httpServer.Addr).Msg("starting HTTP server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	logging.Logger().Info().Msg("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
