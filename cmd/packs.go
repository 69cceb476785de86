package cmd

import (
	"context"
	"fmt"
	"strings"

	"quizard/internal/game"
	"quizard/internal/store"

	"github.com/spf13/cobra"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "Manage content packs",
}

var packsAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Import a JSON content pack",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		s, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		n, err := s.LoadPack(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("import pack: %w", err)
		}

		fmt.Printf("Imported %d questions from %s\n", n, args[0])
		return nil
	},
}

var packsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		s, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		cats, err := s.Content().Categories(ctx)
		if err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		if len(cats) == 0 {
			fmt.Println("No content packs loaded.")
			return nil
		}

		cats, err = s.Progress().AttachPoints(ctx, cats)
		if err != nil {
			return fmt.Errorf("attach points: %w", err)
		}

		fmt.Printf("%-5s  %-28s  %9s  %8s\n", "ID", "Name", "Questions", "Progress")
		fmt.Println(strings.Repeat("─", 58))
		agg := game.AggregateCalculator()
		for _, c := range cats {
			fmt.Printf("%-5d  %-28s  %9d  %7d%%\n",
				c.ID, truncate(c.Name, 28), c.QuestionCount, agg.RecordPercent(c.Point))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	packsCmd.AddCommand(packsAddCmd)
	packsCmd.AddCommand(packsListCmd)
}
