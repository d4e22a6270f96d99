package cli

import (
	"fmt"

	"github.com/forgeworks-cli/forge/internal/agent"
	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/config"
	"github.com/forgeworks-cli/forge/internal/manager"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	generateDryRun    bool
	generateOutputDir string
)

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Preview the manifest without writing files")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "Output root (default: configured output.root)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <request>",
	Short: "Generate a project from a plain-English request",
	Long: `Classify the request, dispatch to the matching specialist agent, and render
its templates into a new project directory.

Examples:
  forge generate "build me a todo web app"
  forge generate "create a REST API for users"
  forge generate --dry-run "a CLI tool for renaming photos"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}

		res, err := m.Handle(manager.Request{Text: args[0], DryRun: generateDryRun})
		if err != nil {
			return err
		}

		printResult(res)
		return nil
	},
}

// newManager wires the bundle store, agent registry, and output root into a
// pipeline manager over the real filesystem.
func newManager() (*manager.Manager, error) {
	store, err := bundle.Load()
	if err != nil {
		return nil, fmt.Errorf("loading template bundles: %w", err)
	}

	root := generateOutputDir
	if root == "" {
		root = config.OutputRoot()
	}

	return manager.New(afero.NewOsFs(), agent.NewRegistry(store), root), nil
}

func printResult(res *manager.Result) {
	fmt.Printf("Category: %s (agent: %s, score: %d)\n", res.Category, res.Agent, res.Score)

	if res.DryRun {
		fmt.Println("\nPlan:")
		for _, step := range res.Plan {
			fmt.Printf("  %s\n", step)
		}
		fmt.Printf("\nWould write %d file(s):\n", len(res.Manifest))
		for _, e := range res.Manifest {
			fmt.Printf("  %-40s %6d bytes\n", e.Path, e.Size)
		}
		return
	}

	fmt.Printf("Output:   %s\n", res.OutputDir)
	fmt.Printf("\nGenerated %d file(s):\n", len(res.Manifest))
	for _, e := range res.Manifest {
		fmt.Printf("  %-40s %6d bytes\n", e.Path, e.Size)
	}
}
