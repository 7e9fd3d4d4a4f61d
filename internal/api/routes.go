package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/players", s.handlePlayers)
		r.Get("/players/{name}/lineups", s.handleLineupOptions)

		r.Group(func(r chi.Router) {
			r.Use(s.sessionMiddleware)
			r.Get("/dashboard", s.handleDashboard)
			r.Post("/selection/player", s.handleSelectPlayer)
			r.Post("/selection/lineups", s.handleSelectLineups)
			r.Post("/selection/mode", s.handleSelectMode)
		})

		r.Get("/assets/player/{name}", s.handlePlayerPhoto)
		r.Get("/assets/team/{team}", s.handleTeamLogo)
	})

	return r
}
