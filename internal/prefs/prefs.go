// Package prefs syncs the UI theme preference with the server and mirrors it
// to a local cache file. The server is the source of truth; the cache only
// covers offline reads.
package prefs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/profolio/profolio-cli/internal/types"
)

// Themes the product understands.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Client reads and writes user preferences.
type Client interface {
	Get(ctx context.Context, path string, out any) error
	Put(ctx context.Context, path string, in, out any) error
}

// Service syncs preferences between the server and the local cache file.
type Service struct {
	client    Client
	cachePath string
}

// NewService creates a preferences client. cachePath may be empty to disable
// the local mirror.
func NewService(client Client, cachePath string) *Service {
	return &Service{client: client, cachePath: cachePath}
}

// Get fetches preferences from the server, falling back to the local cache
// when the server is unreachable.
func (s *Service) Get(ctx context.Context) (*types.Preferences, error) {
	var p types.Preferences
	if err := s.client.Get(ctx, "/user/preferences", &p); err != nil {
		if cached := s.cached(); cached != nil {
			return cached, nil
		}
		return nil, err
	}
	s.cache(p.Theme)
	return &p, nil
}

// SetTheme persists the theme server-side and mirrors it locally.
func (s *Service) SetTheme(ctx context.Context, theme string) (*types.Preferences, error) {
	if theme != ThemeLight && theme != ThemeDark {
		return nil, &UnknownThemeError{Theme: theme}
	}
	var p types.Preferences
	if err := s.client.Put(ctx, "/user/preferences", &types.Preferences{Theme: theme}, &p); err != nil {
		return nil, err
	}
	s.cache(p.Theme)
	return &p, nil
}

// cache writes the theme to the local mirror. Failures are ignored: the cache
// is best-effort by contract.
func (s *Service) cache(theme string) {
	if s.cachePath == "" || theme == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.cachePath), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.cachePath, []byte(theme+"\n"), 0o600)
}

func (s *Service) cached() *types.Preferences {
	if s.cachePath == "" {
		return nil
	}
	data, err := os.ReadFile(s.cachePath)
	if err != nil {
		return nil
	}
	theme := strings.TrimSpace(string(data))
	if theme == "" {
		return nil
	}
	return &types.Preferences{Theme: theme}
}
