package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano"
	"github.com/dan13ram/pos-minter/models"
)

const (
	HTTPServerName = "HTTP SERVER"

	shutdownTimeout = 10 * time.Second
)

// HealthReporter is satisfied by app.HealthCheckRunner.
type HealthReporter interface {
	Health() models.Health
}

// Server serves the mint api and runs as an app.Service.
type Server struct {
	preparer    cardano.MintPreparer
	oracle      cardano.OracleReader
	coordinator cardano.SubmissionCoordinator
	tracker     cardano.TransactionTracker
	health      HealthReporter

	corsOrigins []string
	httpServer  *http.Server
	wg          *sync.WaitGroup

	mu        sync.RWMutex
	listening bool
	startedAt time.Time
}

var _ app.Service = &Server{}

func (x *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: x.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", x.getHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/mint", func(r chi.Router) {
		r.Use(limitBody)
		r.Post("/prepare", x.prepareMint)
		r.Get("/status", x.mintStatus)
		r.Post("/submit", x.submitMint)
		r.Get("/submit", x.submitStatus)
	})

	return r
}

func (x *Server) setListening(listening bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.listening = listening
	if listening {
		x.startedAt = time.Now()
	}
}

func (x *Server) Start() {
	defer x.wg.Done()

	log.Info("[API] Listening on ", x.httpServer.Addr)
	x.setListening(true)
	err := x.httpServer.ListenAndServe()
	x.setListening(false)

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("[API] Server stopped unexpectedly")
		return
	}
	log.Info("[API] Stopped server")
}

func (x *Server) Stop() {
	log.Debug("[API] Stopping server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := x.httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("[API] Error shutting down server")
	}
}

func (x *Server) Health() models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()

	now := time.Now()
	return models.ServiceHealth{
		Name:         HTTPServerName,
		LastSyncTime: x.startedAt,
		NextSyncTime: now,
		Healthy:      x.listening,
	}
}

func NewServer(
	wg *sync.WaitGroup,
	preparer cardano.MintPreparer,
	oracle cardano.OracleReader,
	coordinator cardano.SubmissionCoordinator,
	tracker cardano.TransactionTracker,
	health HealthReporter,
) *Server {
	config := app.Config.HTTP

	x := &Server{
		preparer:    preparer,
		oracle:      oracle,
		coordinator: coordinator,
		tracker:     tracker,
		health:      health,
		corsOrigins: config.CorsOrigins,
		wg:          wg,
	}
	if len(x.corsOrigins) == 0 {
		x.corsOrigins = []string{"*"}
	}

	x.httpServer = &http.Server{
		Addr:              config.ListenAddress,
		Handler:           x.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Duration(config.ReadTimeoutMillis) * time.Millisecond,
		WriteTimeout:      time.Duration(config.WriteTimeoutMillis) * time.Millisecond,
	}

	log.Debug("[API] Initialized server with cors origins ", x.corsOrigins)
	return x
}
