package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/pteprep/internal/app"
	"github.com/abhisek/pteprep/internal/llm"
	"github.com/abhisek/pteprep/internal/store"
	"github.com/spf13/cobra"
)

// withState opens the database, loads the application state and runs fn.
// The LLM provider is built only when withLLM is set.
func withState(cmd *cobra.Command, withLLM bool, fn func(ctx context.Context, st *app.State) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	opts := app.OptionsFromEnv()
	if withLLM {
		opts.Provider = providerFromEnv(ctx, db.EventRepo())
	}
	st, err := app.New(ctx, db, opts)
	if err != nil {
		return err
	}
	return fn(ctx, st)
}

// providerFromEnv builds the optional study-coach provider. A nil return
// means coaching falls back to the built-in advice.
func providerFromEnv(ctx context.Context, events store.EventRepo) llm.Provider {
	cfg, ok := llm.ConfigFromEnv()
	if !ok {
		return nil
	}
	p, err := llm.New(ctx, cfg, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Study advice will use the built-in recommendations.")
		return nil
	}
	return p
}

// requireOnboarded turns a missing profile into a hint for the CLI.
func requireOnboarded(st *app.State) error {
	if !st.Onboarded() {
		return fmt.Errorf("no study profile yet: run `pteprep onboard` or start the app")
	}
	return nil
}
