package cmd

import (
	"context"
	"fmt"
	"time"

	"quizard/internal/llm"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the configured LLM provider",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the provider configuration, optionally with a live request",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if !cfg.AIEnabled() {
			fmt.Println("No LLM provider configured.")
			fmt.Println("Set QUIZARD_LLM_PROVIDER or one of ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY.")
			return nil
		}

		provider, err := llm.NewProvider(context.Background(), cfg.LLM())
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		fmt.Printf("Provider: %s\n", cfg.LLMProvider)
		fmt.Printf("Model:    %s\n", provider.ModelID())

		if ping, _ := cmd.Flags().GetBool("ping"); !ping {
			fmt.Println("\nConfiguration looks valid. Run with --ping to send a test request.")
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			Prompt:    "Reply with the single word: pong",
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("test request: %w", err)
		}

		fmt.Printf("\nResponse: %s\n", string(resp.Content))
		fmt.Printf("Latency:  %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

func init() {
	llmCheckCmd.Flags().Bool("ping", false, "Send a small live request to the provider")
	llmCmd.AddCommand(llmCheckCmd)
}
