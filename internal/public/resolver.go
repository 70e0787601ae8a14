// Package public resolves public share slugs to read-only resume snapshots.
// This path carries no bearer credential: authorization is the slug plus an
// optional password, checked independently on every request.
package public

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/types"
)

// The three failure shapes a caller must tell apart: an unknown slug, a
// protected slug awaiting a password, and a rejected password.
var (
	ErrNotFound         = errors.New("shared resume not found")
	ErrPasswordRequired = errors.New("this resume is password protected")
	ErrInvalidPassword  = errors.New("invalid password")
)

// Resolver fetches shared resumes without a session.
type Resolver struct {
	client *api.Client
}

// NewResolver creates a share resolver. The credential source is stripped from
// the client so a logged-in CLI never leaks its token on the public path.
func NewResolver(client *api.Client) *Resolver {
	return &Resolver{client: client.NoAuth()}
}

// Resolve fetches the resume behind a slug. password may be empty; when the
// slug is protected the caller learns whether a password is needed
// (ErrPasswordRequired) or was wrong (ErrInvalidPassword).
func (r *Resolver) Resolve(ctx context.Context, slug, password string) (*types.PublicResume, error) {
	if slug == "" {
		return nil, fmt.Errorf("share slug is required")
	}
	var resume types.PublicResume
	if err := r.client.Get(ctx, publicPath(slug, password, false), &resume); err != nil {
		return nil, mapError(err)
	}
	if resume.PasswordRequired {
		return nil, ErrPasswordRequired
	}
	return &resume, nil
}

// ExportPDF streams the shared resume's PDF into w under the same
// authorization rule as Resolve.
func (r *Resolver) ExportPDF(ctx context.Context, slug, password string, w io.Writer) error {
	if slug == "" {
		return fmt.Errorf("share slug is required")
	}
	body, err := r.client.Stream(ctx, publicPath(slug, password, true))
	if err != nil {
		return mapError(err)
	}
	defer func() { _ = body.Close() }()
	if _, err := io.Copy(w, body); err != nil {
		return &api.RequestError{URL: "/public/resume/" + slug + "/pdf", Message: "failed to read PDF stream", Cause: err}
	}
	return nil
}

func publicPath(slug, password string, pdf bool) string {
	path := "/public/resume/" + url.PathEscape(slug)
	if pdf {
		path += "/pdf"
	}
	if password != "" {
		path += "?password=" + url.QueryEscape(password)
	}
	return path
}

// mapError converts the wire taxonomy into the resolver's failure shapes. A
// 401 on this path always means a rejected password; "need a password" comes
// back as a 200 with the password_required flag.
func mapError(err error) error {
	switch {
	case api.IsNotFound(err):
		return ErrNotFound
	case api.IsUnauthorized(err):
		return ErrInvalidPassword
	default:
		return err
	}
}
