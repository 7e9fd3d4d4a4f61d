package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
)

// Asset misses are not errors at the HTTP level; the resolver hands back the
// placeholder path and the page keeps its layout.

func (s *Server) handlePlayerPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	name := chi.URLParam(r, "name")

	path, err := s.Resolver.PlayerPhoto(name)
	if err != nil {
		log.Warn("player photo missing, serving placeholder: %v", err)
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleTeamLogo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	team := chi.URLParam(r, "team")

	path, err := s.Resolver.TeamLogo(team)
	if err != nil {
		log.Warn("team logo missing, serving placeholder: %v", err)
	}
	http.ServeFile(w, r, path)
}
