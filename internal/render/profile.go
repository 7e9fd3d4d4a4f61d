package render

import "github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"

// ProfileCard is the display description of the player profile view.
type ProfileCard struct {
	Name      string `json:"name"`
	Height    string `json:"height"`
	Weight    int    `json:"weight"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	DraftYear string `json:"draft_year,omitempty"`
	PhotoURL  string `json:"photo_url"`
	LogoURL   string `json:"logo_url"`
}

// PlayerProfile renders the profile card for a player. Asset URLs are
// resolved by the caller so the renderer stays free of I/O.
func PlayerProfile(p models.Player, photoURL, logoURL string) ProfileCard {
	return ProfileCard{
		Name:      p.Name,
		Height:    p.Height,
		Weight:    p.Weight,
		Position:  p.Position,
		Team:      p.Team,
		DraftYear: p.DraftYear,
		PhotoURL:  photoURL,
		LogoURL:   logoURL,
	}
}
