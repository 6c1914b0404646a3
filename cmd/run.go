package cmd

import (
	"context"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/screen"
	"github.com/abhisek/pteprep/internal/screens/dashboard"
	"github.com/abhisek/pteprep/internal/screens/onboarding"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the state and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return withState(cmd, true, func(_ context.Context, st *app.State) error {
		return app.Run(initialScreen(st), st)
	})
}

// initialScreen is the dashboard once onboarded, onboarding otherwise.
func initialScreen(st *app.State) screen.Screen {
	if st.Onboarded() {
		return dashboard.New(st)
	}
	return onboarding.New(st, func() screen.Screen { return dashboard.New(st) })
}
