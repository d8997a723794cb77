package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/store"
	"github.com/solveuxq/solveuxq/internal/study"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Generate and browse study material",
}

var studyGenerateCmd = &cobra.Command{
	Use:   "generate <category> <topic>",
	Short: "Generate a study article",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

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

		provider, err := llm.NewProviderFromEnv(ctx, llmSelection(cfg), s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := study.NewService(provider, s.MaterialRepo(), cfg.LLM.Timeout())

		lengthFlag, _ := cmd.Flags().GetString("length")
		if lengthFlag == "" {
			lengthFlag = cfg.Study.DefaultLength
		}

		article, err := svc.Generate(ctx, study.GenerateInput{
			Category: args[0],
			Topic:    args[1],
			Length:   study.ParseLength(lengthFlag),
		})
		if err != nil {
			return fmt.Errorf("generate article: %w", err)
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			if err := svc.Save(ctx, article); err != nil {
				return fmt.Errorf("save article: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved as %s\n\n", article.ID)
		}

		fmt.Println(article.Title)
		fmt.Println(strings.Repeat("─", len(article.Title)))
		fmt.Println()
		fmt.Println(article.Content)
		return nil
	},
}

var studyListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List saved study articles",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

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

		repo := s.MaterialRepo()

		if len(args) == 0 {
			categories, err := repo.Categories(ctx)
			if err != nil {
				return fmt.Errorf("list categories: %w", err)
			}
			if len(categories) == 0 {
				fmt.Println("No saved articles. Use `solveuxq study generate` first.")
				return nil
			}
			for _, c := range categories {
				fmt.Println(c)
			}
			return nil
		}

		articles, err := repo.ByCategory(ctx, args[0])
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		if len(articles) == 0 {
			fmt.Printf("No saved articles in %q.\n", args[0])
			return nil
		}

		fmt.Printf("%-36s  %-8s  %s\n", "ID", "Length", "Title")
		fmt.Println(strings.Repeat("─", 80))
		for _, a := range articles {
			fmt.Printf("%-36s  %-8s  %s\n", a.ArticleID, a.Length, a.Title)
		}
		return nil
	},
}

var studyReadCmd = &cobra.Command{
	Use:   "read <article-id>",
	Short: "Print a saved study article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

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

		article, err := s.MaterialRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load article: %w", err)
		}
		if article == nil {
			return fmt.Errorf("article %q not found", args[0])
		}

		fmt.Println(article.Title)
		fmt.Println(strings.Repeat("─", len(article.Title)))
		fmt.Println()
		fmt.Println(article.Content)
		return nil
	},
}

func init() {
	studyGenerateCmd.Flags().StringP("length", "l", "", "Article length: short, medium, or long")
	studyGenerateCmd.Flags().Bool("save", false, "Save the article to the library")

	studyCmd.AddCommand(studyGenerateCmd)
	studyCmd.AddCommand(studyListCmd)
	studyCmd.AddCommand(studyReadCmd)
}
