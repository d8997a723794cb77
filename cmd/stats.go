package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solveuxq/solveuxq/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		userID := resolveUserID(cmd)

		stats, err := s.StatsRepo().Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("User:             %s\n", stats.UserID)
		fmt.Printf("Rank:             %s\n", stats.Rank)
		fmt.Printf("Total points:     %d\n", stats.TotalPoints)
		fmt.Printf("Quizzes finished: %d\n", stats.QuizzesCompleted)
		fmt.Printf("Average score:    %.1f%%\n", stats.AverageScore)
		fmt.Printf("Streak:           %d day(s)\n", stats.Streak)

		progress, err := s.AttemptRepo().CategoryProgress(ctx, userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if len(progress) > 0 {
			fmt.Println()
			fmt.Println("Progress by Category")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-16s  %8s  %8s  %8s  %8s\n",
				"Category", "Attempts", "Avg", "Best", "Points")
			fmt.Println(strings.Repeat("─", 72))
			for _, p := range progress {
				fmt.Printf("%-16s  %8d  %7.1f%%  %7.1f%%  %8d\n",
					p.CategoryID, p.Attempts, p.AverageScore, p.BestScore, p.TotalPoints)
			}
		}

		limit, _ := cmd.Flags().GetInt("history")
		history, err := s.AttemptRepo().History(ctx, userID, limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(history) > 0 {
			fmt.Println()
			fmt.Println("Recent Attempts")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-19s  %-16s  %-12s  %7s  %7s\n",
				"Taken", "Category", "Difficulty", "Score", "Points")
			fmt.Println(strings.Repeat("─", 72))
			for _, a := range history {
				fmt.Printf("%-19s  %-16s  %-12s  %6.1f%%  %7d\n",
					a.TakenAt.Local().Format("2006-01-02 15:04:05"),
					a.CategoryID, a.Difficulty, a.ScorePercent, a.Points)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("history", "n", store.DefaultHistoryLimit, "Number of recent attempts to show")
}
