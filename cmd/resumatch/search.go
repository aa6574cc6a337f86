package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search candidates",
	Long:  "Rank the configured candidate collection against a free-text query and print the top matches.",
	Example: `  resumatch search "python developer"
  resumatch search "react 3+ years"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, _, err := bootstrap(ctx, true)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		query := strings.Join(args, " ")
		results, err := a.Candidates.Search(ctx, query)
		if err != nil {
			return err
		}

		printResults(cmd.OutOrStdout(), query, results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func printResults(w io.Writer, query string, results []domain.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No candidates match %q.\n", query)
		return
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Found %d candidates for %q", len(results), query)))
	for i, r := range results {
		name := r.Resume.OriginalName
		if name == "" {
			name = r.Resume.ID
		}
		fmt.Fprintf(w, "%d. %s  %s\n", i+1, name, scoreStyle.Render(fmt.Sprintf("score %d", r.MatchScore)))
		fmt.Fprintf(w, "   %s %s\n", labelStyle.Render("Category:"), r.Resume.Category)
		if len(r.Resume.Skills) > 0 {
			fmt.Fprintf(w, "   %s %s\n", labelStyle.Render("Skills:"), strings.Join(r.Resume.Skills, ", "))
		}
		if r.Resume.ExperienceYears > 0 {
			fmt.Fprintf(w, "   %s %d years\n", labelStyle.Render("Experience:"), r.Resume.ExperienceYears)
		}
		if r.MatchReason != nil {
			fmt.Fprintf(w, "   %s %s\n", labelStyle.Render("Why:"), strings.TrimSpace(*r.MatchReason))
		}
	}
}
