//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/simukka/sorades-invaders/config"
	"github.com/simukka/sorades-invaders/highscore"
)

// Server serves the page, static assets and the API.
type Server struct {
	scores highscore.Store
	tuning config.Tuning
	static http.FileSystem

	// Submit is load-compare-save; the lock makes it atomic across requests.
	mu sync.Mutex
}

// NewServer wires a server over the given score store.
func NewServer(scores highscore.Store, tuning config.Tuning, static http.FileSystem) *Server {
	return &Server{scores: scores, tuning: tuning, static: static}
}

// ScoreMessage is the body of /api/highscore requests and responses.
type ScoreMessage struct {
	Score int `json:"score"`
}

// Routes returns the request multiplexer.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(s.static)

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})

	mux.HandleFunc("/api/highscore", s.handleHighScore)
	mux.HandleFunc("/api/tuning", s.handleTuning)

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})
	return mux
}

func (s *Server) handleHighScore(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.Lock()
		best := s.scores.Load()
		s.mu.Unlock()
		writeJSON(w, ScoreMessage{Score: best})

	case http.MethodPost:
		var msg ScoreMessage
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&msg); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if msg.Score < 0 {
			http.Error(w, "score must not be negative", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		best, err := highscore.Submit(s.scores, msg.Score)
		s.mu.Unlock()
		if err != nil {
			log.Printf("Failed to save high score %d: %v", msg.Score, err)
			http.Error(w, "failed to save score", http.StatusInternalServerError)
			return
		}
		writeJSON(w, ScoreMessage{Score: best})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTuning(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.tuning)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
