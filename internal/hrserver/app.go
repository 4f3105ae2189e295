package hrserver

import (
	"context"

	"github.com/kart-io/hr-center/pkg/app"
)

const appDescription = `HR-Center administration server

The backend for the HR administration portal.

This server provides:
  - Employee roster and onboarding
  - Organizational structure (departments, positions, locations)
  - User profiles and role administration
  - Office weather reporting`

// NewApp creates the hr-server application.
func NewApp() *app.App {
	opts := NewOptions()

	return app.NewApp(
		app.WithName(Name),
		app.WithShortDescription("The HR-Center administration server"),
		app.WithDescription(appDescription),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return Run(opts)
		}),
	)
}

// Run assembles the server from options and runs it.
func Run(opts *Options) error {
	srv, err := NewServer(context.Background(), opts)
	if err != nil {
		return err
	}
	return srv.Run()
}
