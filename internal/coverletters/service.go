// Package coverletters maps cover letters to the remote CRUD surface. The
// lifecycle mirrors resumes: create on first save, full update afterwards.
package coverletters

import (
	"context"
	"fmt"
	"net/url"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/types"
)

// Service is the persistence client for cover letters.
type Service struct {
	client *api.Client
}

// NewService creates a cover letter persistence client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List fetches all cover letters owned by the session.
func (s *Service) List(ctx context.Context) ([]types.CoverLetter, error) {
	var letters []types.CoverLetter
	if err := s.client.Get(ctx, "/cover-letters", &letters); err != nil {
		return nil, err
	}
	return letters, nil
}

// Get fetches a single cover letter by id.
func (s *Service) Get(ctx context.Context, id string) (*types.CoverLetter, error) {
	if id == "" {
		return nil, fmt.Errorf("cover letter id is required")
	}
	var letter types.CoverLetter
	if err := s.client.Get(ctx, "/cover-letters/"+url.PathEscape(id), &letter); err != nil {
		return nil, err
	}
	return &letter, nil
}

// Save persists the letter: create when it has no id, full update otherwise.
func (s *Service) Save(ctx context.Context, letter types.CoverLetter) (*types.CoverLetter, error) {
	if letter.Title == "" {
		return nil, fmt.Errorf("cover letter title is required")
	}
	var saved types.CoverLetter
	if letter.ID == "" {
		if err := s.client.Post(ctx, "/cover-letters", &letter, &saved); err != nil {
			return nil, err
		}
	} else {
		if err := s.client.Put(ctx, "/cover-letters/"+url.PathEscape(letter.ID), &letter, &saved); err != nil {
			return nil, err
		}
	}
	return &saved, nil
}

// Delete removes a cover letter, tolerating an id the server already forgot.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("cover letter id is required")
	}
	err := s.client.Delete(ctx, "/cover-letters/"+url.PathEscape(id))
	if err != nil && !api.IsNotFound(err) {
		return err
	}
	return nil
}
