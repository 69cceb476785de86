package cmd

import (
	"context"
	"fmt"
	"strings"

	"quizard/internal/game"
	"quizard/internal/quiz"
	"quizard/internal/store"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show best results per category and mode",
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

		fmt.Printf("%-28s  %7s  %9s  %7s  %7s  %8s\n",
			"Category", "Arcade", "Marathon", "Sprint", "Games", "Overall")
		fmt.Println(strings.Repeat("─", 76))

		agg := game.AggregateCalculator()
		for _, c := range cats {
			arcade, _ := game.CalculatorFor(quiz.ModeArcade).Record(c.Point)
			marathon, _ := game.CalculatorFor(quiz.ModeMarathon).Record(c.Point)
			sprint, _ := game.CalculatorFor(quiz.ModeSprint).Record(c.Point)
			fmt.Printf("%-28s  %7d  %9d  %7d  %7d  %7d%%\n",
				truncate(c.Name, 28), arcade, marathon, sprint,
				c.Point.Attempts, agg.RecordPercent(c.Point))
		}

		errIDs, err := s.Progress().ErrorIDs(ctx)
		if err != nil {
			return fmt.Errorf("load error ids: %w", err)
		}
		fmt.Printf("\nError review queue: %d questions\n", len(errIDs))
		return nil
	},
}
