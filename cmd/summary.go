package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/K1ta141k/skillsense-hr/internal/skillsense"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate candidate-pipeline stats",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := newDashboard(context.Background())
		if err != nil {
			log.Fatalf("starting the dashboard: %v", err)
		}

		if !d.requireSession() {
			return errNotLoggedIn
		}

		summary, err := d.client.GetSummary()
		if err != nil {
			return fmt.Errorf("%s", skillsense.ErrorDetail(err, "Failed to load summary"))
		}

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			pretty, _ := json.MarshalIndent(summary.Raw, "", "  ")
			fmt.Println(string(pretty))
			return nil
		}

		renderSummary(os.Stdout, summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Bool("raw", false, "dump the raw summary payload as JSON")
}
