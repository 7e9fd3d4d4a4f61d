// Package assets resolves player photos and team logos on disk. File naming
// in the source asset dump is inconsistent, so lookup tries a sequence of
// known variants before falling back to the placeholder icon.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/errors"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".avif", ".svg"}

// Resolver locates image assets under a base directory with photos/ and
// logos/ subdirectories.
type Resolver struct {
	photosDir   string
	logosDir    string
	placeholder string
	log         *logger.Logger
}

// NewResolver creates a Resolver rooted at baseDir. placeholder is the path
// returned when no file matches any naming variant.
func NewResolver(baseDir, placeholder string) *Resolver {
	return &Resolver{
		photosDir:   filepath.Join(baseDir, "photos"),
		logosDir:    filepath.Join(baseDir, "logos"),
		placeholder: placeholder,
		log:         logger.Default().WithPrefix("assets"),
	}
}

// PlayerPhoto returns the path of the photo for a player name, or the
// placeholder with an ASSET_NOT_FOUND error when nothing matches. The miss
// is recoverable: callers serve the placeholder and log, never surface it.
func (r *Resolver) PlayerPhoto(name string) (string, error) {
	if path, ok := r.find(r.photosDir, name); ok {
		return path, nil
	}
	r.log.Warn("no photo found for player %q, using placeholder", name)
	return r.placeholder, errors.NewAssetNotFoundError("photo", name)
}

// TeamLogo returns the path of the logo for a team name, or the placeholder
// with an ASSET_NOT_FOUND error when nothing matches.
func (r *Resolver) TeamLogo(team string) (string, error) {
	// Logos are conventionally named "<team> logo.<ext>".
	if path, ok := r.find(r.logosDir, team+" logo"); ok {
		return path, nil
	}
	if path, ok := r.find(r.logosDir, team); ok {
		return path, nil
	}
	r.log.Warn("no logo found for team %q, using placeholder", team)
	return r.placeholder, errors.NewAssetNotFoundError("logo", team)
}

// find tries the naming variants in order: exact, trailing space, leading
// space, hyphenated, then a case-insensitive scan for the last word of the
// name anywhere in a filename.
func (r *Resolver) find(dir, name string) (string, bool) {
	variants := []string{
		name,
		name + " ",
		" " + name,
		strings.ReplaceAll(name, " ", "-"),
	}
	for _, v := range variants {
		for _, ext := range imageExtensions {
			path := filepath.Join(dir, v+ext)
			if fileExists(path) {
				return path, true
			}
		}
	}

	words := strings.Fields(name)
	if len(words) == 0 {
		return "", false
	}
	last := strings.ToLower(words[len(words)-1])

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name()), last) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
