package api

import (
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/assets"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/dashboard"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/services"
)

// Server holds the handler dependencies for the dashboard API.
type Server struct {
	Dashboard services.DashboardService
	Sessions  *dashboard.SessionStore
	Resolver  *assets.Resolver
}

func NewServer(svc services.DashboardService, sessions *dashboard.SessionStore, resolver *assets.Resolver) *Server {
	return &Server{
		Dashboard: svc,
		Sessions:  sessions,
		Resolver:  resolver,
	}
}
