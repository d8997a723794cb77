package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solveuxq/solveuxq/internal/store"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the points leaderboard",
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

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := s.StatsRepo().Leaderboard(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No quiz attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-4s  %-24s  %-12s  %8s\n", "#", "User", "Rank", "Points")
		fmt.Println(strings.Repeat("─", 56))
		for _, e := range entries {
			fmt.Printf("%-4d  %-24s  %-12s  %8d\n",
				e.Position, e.UserID, e.Rank, e.TotalPoints)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().IntP("limit", "n", 10, "Number of users to show")
}
