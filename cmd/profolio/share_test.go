package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/profolio/profolio-cli/internal/public"
)

func TestShareError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "Unknown slug", err: public.ErrNotFound, want: "no shared resume exists"},
		{name: "Protected share", err: public.ErrPasswordRequired, want: "retry with --password"},
		{name: "Wrong password", err: public.ErrInvalidPassword, want: "incorrect password"},
		{name: "Wrapped sentinel", err: fmt.Errorf("resolve: %w", public.ErrPasswordRequired), want: "retry with --password"},
		{name: "Other failure", err: fmt.Errorf("connection refused"), want: "failed to fetch shared resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shareError(tt.err)
			assert.ErrorContains(t, got, tt.want)
		})
	}
}
