package cli

import (
	"fmt"

	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <request>",
	Short: "Show how a request would be classified, without generating",
	Long: `Print the full ranked category scores for a request. Useful for inspecting
near-misses when a request lands in an unexpected category.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := classify.Classify(args[0])

		fmt.Printf("Winner: %s (score: %d)\n", res.Category, res.Points)
		if res.Tech != "" {
			fmt.Printf("Forced by explicit technology mention: %s\n", res.Tech)
		}

		fmt.Println("\nRanked scores:")
		for _, s := range res.Ranked {
			marker := " "
			if s.Category == res.Category {
				marker = "*"
			}
			fmt.Printf("  %s %-8s %d\n", marker, s.Category, s.Points)
		}
		return nil
	},
}
