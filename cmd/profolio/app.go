package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/ai"
	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/auth"
	"github.com/profolio/profolio-cli/internal/config"
	"github.com/profolio/profolio-cli/internal/coverletters"
	"github.com/profolio/profolio-cli/internal/observability"
	"github.com/profolio/profolio-cli/internal/payments"
	"github.com/profolio/profolio-cli/internal/prefs"
	"github.com/profolio/profolio-cli/internal/public"
	"github.com/profolio/profolio-cli/internal/resumes"
)

// app bundles the configured services every command works against.
type app struct {
	cfg          *config.Config
	client       *api.Client
	session      *auth.Store
	resumes      *resumes.Service
	coverLetters *coverletters.Service
	ai           *ai.Gateway
	payments     *payments.Service
	public       *public.Resolver
	prefs        *prefs.Service
	printer      *observability.Printer
}

// newApp loads configuration and wires the service graph. It does not touch
// the network.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	client := api.New(cfg.APIBaseURL, &api.Options{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	session := auth.NewStore(client, cfg.TokenPath)

	return &app{
		cfg:          cfg,
		client:       client,
		session:      session,
		resumes:      resumes.NewService(client),
		coverLetters: coverletters.NewService(client),
		ai:           ai.NewGateway(client, session),
		payments:     payments.NewService(client),
		public:       public.NewResolver(client),
		prefs:        prefs.NewService(client, cfg.ThemeCachePath),
		printer:      observability.NewPrinter(os.Stdout),
	}, nil
}

// requireSession restores the persisted session and fails when no valid
// credentials are available.
func (a *app) requireSession(cmd *cobra.Command) error {
	user, err := a.session.Verify(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if user == nil {
		return fmt.Errorf("not logged in; run `profolio login` first")
	}
	return nil
}
