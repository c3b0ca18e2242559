package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RohitDatta06/gamehub/internal/storage"
)

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.Games(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	out := make([]GameDTO, len(games))
	for i, g := range games {
		out[i] = toGame(g)
	}
	writeJSON(w, http.StatusOK, map[string][]GameDTO{"games": out})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Game(r.Context(), chi.URLParam(r, "slug"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeGameNotFound, "Game not found")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]GameDTO{"game": toGame(*g)})
}

func (s *Server) handleSeedGames(w http.ResponseWriter, r *http.Request) {
	added, err := s.store.SeedGames(r.Context(), s.catalog)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.logger.Info("catalog seeded", "added", added, "total", len(s.catalog))
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "count": len(s.catalog)})
}
