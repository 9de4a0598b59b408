package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the canonical team registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		registry, err := buildRegistry(cfg)
		if err != nil {
			return fmt.Errorf("loading team registry: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tABBR\tFULL NAME\tLEAGUE\tDIVISION\tEXTERNAL ID")
		for _, team := range registry.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				team.ID, team.Abbreviation, team.FullName, team.League, team.Division, team.ExternalID)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(teamsCmd)
}
