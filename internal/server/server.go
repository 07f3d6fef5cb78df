package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/betslip/iris/internal/config"
	"github.com/betslip/iris/internal/gateway"
	"github.com/betslip/iris/pkg/contracts"
	"github.com/betslip/iris/pkg/models"
)

// Server is the inbound HTTP surface of the gateway
type Server struct {
	gateway    *gateway.Gateway
	adapter    contracts.VendorAdapter
	log        *logrus.Logger
	httpServer *http.Server
}

// New creates the HTTP server
func New(cfg *config.HTTPConfig, gw *gateway.Gateway, adapter contracts.VendorAdapter, log *logrus.Logger) *Server {
	s := &Server{
		gateway: gw,
		adapter: adapter,
		log:     log,
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
	})

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(s.Router()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Router builds the route table. Exposed so tests can drive the handlers
// through httptest without binding a port.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.Use(s.requestID, s.accessLog)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/odds", s.handleOdds).Methods(http.MethodGet)
	r.HandleFunc("/{sport}/weekend", s.handleWindow(models.WindowWeekend)).Methods(http.MethodGet)
	r.HandleFunc("/{sport}/today", s.handleWindow(models.WindowToday)).Methods(http.MethodGet)
	r.HandleFunc("/{sport}/events", s.handleEvents).Methods(http.MethodGet)

	return r
}

// Start serves until Stop is called or the listener fails
func (s *Server) Start() error {
	s.log.WithField("addr", s.httpServer.Addr).Info("http server listening")
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests and shuts the listener down
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
