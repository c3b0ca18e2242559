package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/RohitDatta06/gamehub/internal/storage"
)

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, err := s.store.Game(r.Context(), slug); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, CodeGameNotFound, "Game not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	var req SubmitScoreRequest
	if !s.decode(w, r, &req) {
		return
	}

	sc, err := s.store.SaveScore(r.Context(), userID(r), slug, *req.Value)
	if errors.Is(err, storage.ErrInvalidScore) {
		writeError(w, http.StatusBadRequest, CodeValidation, "value must be min 0")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]ScoreDTO{"score": toScore(*sc)})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	// Unparseable limits fall back to the default like a missing one.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := s.store.Leaderboard(r.Context(), chi.URLParam(r, "slug"), limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	out := make([]EntryDTO, len(entries))
	for i, e := range entries {
		out[i] = EntryDTO{
			ID:        e.ScoreID,
			Rank:      e.Rank,
			Value:     e.Value,
			User:      PlayerDTO{ID: e.UserID, Username: e.Username},
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string][]EntryDTO{"scores": out})
}

func (s *Server) handleMyScores(w http.ResponseWriter, r *http.Request) {
	scores, err := s.store.UserScores(r.Context(), userID(r), chi.URLParam(r, "slug"), storage.DefaultLimit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	out := make([]ScoreDTO, len(scores))
	for i, sc := range scores {
		out[i] = toScore(sc)
	}
	writeJSON(w, http.StatusOK, map[string][]ScoreDTO{"scores": out})
}

func (s *Server) handleMyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.UserStats(r.Context(), userID(r))
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	out := make([]StatDTO, len(stats))
	for i, st := range stats {
		out[i] = StatDTO{GameSlug: st.GameSlug, BestScore: st.BestScore, TotalPlays: st.TotalPlays}
	}
	writeJSON(w, http.StatusOK, map[string][]StatDTO{"stats": out})
}
