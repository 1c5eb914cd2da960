package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/DylM0nster22/Tetris/pkg/log"
	"github.com/DylM0nster22/Tetris/pkg/repositories"
	"github.com/gorilla/mux"
)

const (
	DefaultScoresLimit = 10
	MaxScoresLimit     = 100
)

type HighScoreResponse struct {
	HighScore int `json:"highScore"`
}

func HandleListScores(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultScoresLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = min(parsed, MaxScoresLimit)
		}

		scores, err := repository.TopScores(r.Context(), limit)
		if err != nil {
			log.Error("failed to list scores: %v", err)
			http.Error(w, "Failed to list scores", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, scores)
	}
}

func HandleCreateScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record := &repositories.ScoreRecord{}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64*1024)).Decode(record); err != nil {
			http.Error(w, "Failed to decode score", http.StatusBadRequest)
			return
		}
		// ids and timestamps are assigned by the repository
		record.ID = 0
		record.CreatedAt = time.Time{}

		if err := repositories.ValidateScoreRecord(record); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := repository.SaveScore(r.Context(), record); err != nil {
			log.Error("failed to save score: %v", err)
			http.Error(w, "Failed to save score", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

func HandleGetScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["scoreID"], 10, 64)
		if err != nil {
			http.Error(w, "Failed to parse scoreID", http.StatusBadRequest)
			return
		}

		record, err := repository.GetScore(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Score not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get score: %v", err)
			http.Error(w, "Failed to get score", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func HandleHighScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		score, err := repository.HighScore(r.Context())
		if err != nil {
			log.Error("failed to get high score: %v", err)
			http.Error(w, "Failed to get high score", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, HighScoreResponse{HighScore: score})
	}
}

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
