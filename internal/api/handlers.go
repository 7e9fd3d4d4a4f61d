package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/dashboard"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/errors"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.Sessions.Len(),
	})
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing players")

	players, err := s.Dashboard.Players(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"players": players})
}

func (s *Server) handleLineupOptions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	name := chi.URLParam(r, "name")
	log = log.WithField("player", name)
	log.Debug("listing lineup options")

	options, err := s.Dashboard.LineupOptions(r.Context(), name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if len(options) == 0 {
		exists, err := s.Dashboard.PlayerExists(r.Context(), name)
		if err != nil {
			handleError(w, r, err)
			return
		}
		if !exists {
			handleError(w, r, errors.NewNotFoundError("player", name))
			return
		}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"lineups": options})
}

// controller resolves the request's session controller.
func (s *Server) controller(r *http.Request) (*dashboard.Controller, error) {
	id := sessionIDFromContext(r.Context())
	if id == "" {
		return nil, errors.NewInternalError(fmt.Errorf("no session id in request context"))
	}
	return s.Sessions.Get(r.Context(), id)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctrl, err := s.controller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, ctrl.Snapshot())
}

func (s *Server) handleSelectPlayer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Player string `json:"player"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Player == "" {
		handleError(w, r, errors.NewBadRequestError("player is required"))
		return
	}

	ctrl, err := s.controller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	snap := ctrl.Apply(r.Context(), dashboard.SelectPlayer{Name: body.Player})
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleSelectLineups(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Lineups []string `json:"lineups"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handleError(w, r, errors.NewBadRequestError("lineups is required"))
		return
	}

	ctrl, err := s.controller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	snap := ctrl.Apply(r.Context(), dashboard.SelectLineups{Keys: body.Lineups})
	respondJSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleSelectMode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handleError(w, r, errors.NewBadRequestError("mode is required"))
		return
	}
	mode := models.ChartMode(body.Mode)
	if !mode.Valid() {
		handleError(w, r, errors.NewSelectionInvalidError("mode must be point or zone"))
		return
	}

	ctrl, err := s.controller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	snap := ctrl.Apply(r.Context(), dashboard.SelectChartMode{Mode: mode})
	respondJSON(w, r, http.StatusOK, snap)
}
