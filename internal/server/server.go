// Package server exposes the canned backends over HTTP: the same three
// request/response operations the TUI consumes, wrapped as JSON endpoints so
// the module contract survives a move to a real deployment unchanged.
package server

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/adikari/dailydesk/internal/service"
)

// Services bundles the backends the HTTP facade serves.
type Services struct {
	Weather  *service.WeatherService
	Currency *service.CurrencyService
	Quotes   *service.QuoteService
}

// Server wraps the router and its dependencies.
type Server struct {
	svcs   Services
	router *mux.Router
}

// New builds a server with all routes registered.
func New(svcs Services) *Server {
	s := &Server{svcs: svcs}
	s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(requestID)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/weather", s.handleWeather).Methods(http.MethodGet)
	api.HandleFunc("/convert", s.handleConvert).Methods(http.MethodGet)
	api.HandleFunc("/quote", s.handleQuote).Methods(http.MethodGet)
	s.router = r
}

// requestID tags every request so log lines from concurrent calls can be
// correlated. An incoming X-Request-ID is kept; otherwise one is minted.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		log.Printf("%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
