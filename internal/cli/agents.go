package cli

import (
	"fmt"

	"github.com/forgeworks-cli/forge/internal/naming"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(agentsCmd)
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the available specialist agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}

		fmt.Println("Available agents:")
		for _, a := range m.Agents() {
			fmt.Printf("  %-8s %-12s %s\n", a.Name(), naming.CategoryDir(a.Category())+"/", a.Description())
		}
		return nil
	},
}
