package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/DylM0nster22/Tetris/pkg/api/handlers"
	"github.com/DylM0nster22/Tetris/pkg/api/middleware"
	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port       int
	TLS        *TLSConfig
	Repository repositories.Repository
	// RelayHandler is mounted at /ws when set
	RelayHandler http.Handler
}

// NewAPIServer creates a new http.Server for the scores API and, optionally, the relay
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Repository, opts.RelayHandler),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter wires the API routes. A nil repository disables the scores routes.
func NewRouter(repository repositories.Repository, relay http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware())

	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet)

	if relay != nil {
		r.Handle("/ws", relay)
	}

	if repository != nil {
		scores := r.PathPrefix("/scores").Subrouter()
		scores.Use(middleware.NewCORSMiddleware())
		scores.HandleFunc("", handlers.HandleListScores(repository)).Methods(http.MethodGet, http.MethodOptions)
		scores.HandleFunc("", handlers.HandleCreateScore(repository)).Methods(http.MethodPost)
		scores.HandleFunc("/high", handlers.HandleHighScore(repository)).Methods(http.MethodGet, http.MethodOptions)
		scores.HandleFunc("/{scoreID:[0-9]+}", handlers.HandleGetScore(repository)).Methods(http.MethodGet, http.MethodOptions)
	}

	return r
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
