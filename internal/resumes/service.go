// Package resumes maps the in-memory resume model to the remote CRUD surface
// and owns the local collection shown on the dashboard.
package resumes

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/document"
	"github.com/profolio/profolio-cli/internal/schemas"
	"github.com/profolio/profolio-cli/internal/types"
)

// Service is the persistence client for resumes. All methods are safe for
// concurrent use; saves targeting the same resume are serialized.
type Service struct {
	client *api.Client

	mu         sync.Mutex
	collection []types.Resume

	saveMu    sync.Mutex
	saveLocks map[string]*sync.Mutex
}

// NewService creates a resume persistence client.
func NewService(client *api.Client) *Service {
	return &Service{
		client:    client,
		saveLocks: make(map[string]*sync.Mutex),
	}
}

// List fetches all resumes owned by the session and replaces the local
// collection with the result.
func (s *Service) List(ctx context.Context) ([]types.Resume, error) {
	var resumes []types.Resume
	if err := s.client.Get(ctx, "/resumes", &resumes); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.collection = resumes
	s.mu.Unlock()
	return s.Collection(), nil
}

// Get fetches a single resume by id.
func (s *Service) Get(ctx context.Context, id string) (*types.Resume, error) {
	if id == "" {
		return nil, fmt.Errorf("resume id is required")
	}
	var resume types.Resume
	if err := s.client.Get(ctx, "/resumes/"+url.PathEscape(id), &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// Save persists the resume: a create when it has no id, a full-document update
// otherwise. The id returned by a create binds the document permanently; all
// later saves route to update. At most one save per resume is in flight at a
// time, so a stale update can never overtake a newer one from this process.
// On any failure the local state is left untouched.
func (s *Service) Save(ctx context.Context, resume types.Resume) (*types.Resume, error) {
	if !types.ValidTemplate(resume.Template) {
		return nil, fmt.Errorf("unknown template: %s", resume.Template)
	}
	resume.Data = document.Normalize(resume.Data)
	if err := schemas.ValidateDocument(&resume.Data); err != nil {
		return nil, err
	}

	lock := s.saveLock(resume.ID)
	lock.Lock()
	defer lock.Unlock()

	var saved types.Resume
	if resume.ID == "" {
		if err := s.client.Post(ctx, "/resumes", &resume, &saved); err != nil {
			return nil, err
		}
		s.prepend(saved)
	} else {
		if err := s.client.Put(ctx, "/resumes/"+url.PathEscape(resume.ID), &resume, &saved); err != nil {
			return nil, err
		}
		s.replace(saved)
	}
	return &saved, nil
}

// Delete removes a resume. It is idempotent from the caller's perspective: a
// second delete of an id the server no longer knows succeeds and leaves the
// local collection without the id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("resume id is required")
	}
	err := s.client.Delete(ctx, "/resumes/"+url.PathEscape(id))
	if err != nil && !api.IsNotFound(err) {
		return err
	}
	s.remove(id)
	return nil
}

// Duplicate asks the server for a copy and inserts it at the front of the
// local collection without a full reload.
func (s *Service) Duplicate(ctx context.Context, id string) (*types.Resume, error) {
	if id == "" {
		return nil, fmt.Errorf("resume id is required")
	}
	var copy types.Resume
	if err := s.client.Post(ctx, "/resumes/"+url.PathEscape(id)+"/duplicate", nil, &copy); err != nil {
		return nil, err
	}
	s.prepend(copy)
	return &copy, nil
}

// ExportPDF streams the rendered PDF for a persisted resume into w. Nothing
// is cached; every export is a fresh download.
func (s *Service) ExportPDF(ctx context.Context, id string, w io.Writer) error {
	if id == "" {
		return fmt.Errorf("resume id is required")
	}
	body, err := s.client.Stream(ctx, "/resumes/"+url.PathEscape(id)+"/pdf")
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()
	if _, err := io.Copy(w, body); err != nil {
		return &api.RequestError{URL: "/resumes/" + id + "/pdf", Message: "failed to read PDF stream", Cause: err}
	}
	return nil
}

// Collection returns a snapshot of the local collection.
func (s *Service) Collection() []types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Resume, len(s.collection))
	copy(out, s.collection)
	return out
}

// saveLock returns the per-resume save mutex. Unpersisted documents share one
// lock under the empty id; a first save assigns the identity that keys later
// ones.
func (s *Service) saveLock(id string) *sync.Mutex {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	lock, ok := s.saveLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.saveLocks[id] = lock
	}
	return lock
}

func (s *Service) prepend(r types.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = append([]types.Resume{r}, s.collection...)
}

func (s *Service) replace(r types.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.collection {
		if s.collection[i].ID == r.ID {
			s.collection[i] = r
			return
		}
	}
	s.collection = append([]types.Resume{r}, s.collection...)
}

func (s *Service) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.collection {
		if s.collection[i].ID == id {
			s.collection = append(s.collection[:i], s.collection[i+1:]...)
			return
		}
	}
}
