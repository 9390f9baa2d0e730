package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Dictionary is the read only side of a loaded tree.
type Dictionary interface {
	Size() int
	ContainsWord(word string) bool
	GetWords(prefix string) []string
	GetWordsOfLength(length int) []string
}

// Server exposes a dictionary over HTTP.
// The dictionary must be fully loaded before the server starts, it is never written to.
type Server struct {
	dict   Dictionary
	server *http.Server
	logger zerolog.Logger
}

// NewServer creates a new API server
func NewServer(addr string, dict Dictionary, logger zerolog.Logger) *Server {
	s := &Server{
		dict:   dict,
		logger: logger,
	}

	r := mux.NewRouter()

	// request logging middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			s.logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("took", time.Since(start)).
				Msg("request")
		})
	})

	r.HandleFunc("/size", s.size).Methods(http.MethodGet)
	r.HandleFunc("/words", s.words).Methods(http.MethodGet)
	r.HandleFunc("/words/length/{length}", s.wordsOfLength).Methods(http.MethodGet)
	r.HandleFunc("/contains/{word}", s.contains).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until ctx is cancelled, then shuts the server down
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.server.Addr).Msg("serving dictionary")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type sizeResponse struct {
	Size int `json:"size"`
}

type wordsResponse struct {
	Prefix *string  `json:"prefix,omitempty"`
	Length *int     `json:"length,omitempty"`
	Words  []string `json:"words"`
}

type containsResponse struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) size(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, sizeResponse{Size: s.dict.Size()})
}

func (s *Server) words(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	s.writeJSON(w, http.StatusOK, wordsResponse{Prefix: &prefix, Words: s.dict.GetWords(prefix)})
}

func (s *Server) wordsOfLength(w http.ResponseWriter, r *http.Request) {
	length, err := strconv.Atoi(mux.Vars(r)["length"])
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "length must be an integer"})
		return
	}
	s.writeJSON(w, http.StatusOK, wordsResponse{Length: &length, Words: s.dict.GetWordsOfLength(length)})
}

func (s *Server) contains(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	s.writeJSON(w, http.StatusOK, containsResponse{Word: word, Found: s.dict.ContainsWord(word)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to write response")
	}
}
