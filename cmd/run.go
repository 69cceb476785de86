package cmd

import (
	"fmt"
	"os"

	"quizard/internal/aitasks"
	"quizard/internal/app"
	"quizard/internal/llm"
	"quizard/internal/quizgen"
	"quizard/internal/store"

	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := app.Deps{Store: st, Config: cfg}

	// The AI Tasks mode is optional; everything else works without a provider.
	if cfg.AIEnabled() {
		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI Tasks mode will be unavailable.")
		} else {
			gen := quizgen.New(provider, quizgen.DefaultConfig())
			deps.Tasks = aitasks.NewSource(gen, cfg.AIBatchSize)
		}
	}

	return app.Run(deps)
}
