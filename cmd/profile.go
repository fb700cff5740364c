package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/K1ta141k/skillsense-hr/internal/skillsense"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile <submission-id>",
	Short: "Show the full aggregated profile for a candidate submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		d, err := newDashboard(context.Background())
		if err != nil {
			log.Fatalf("starting the dashboard: %v", err)
		}

		if !d.requireSession() {
			return errNotLoggedIn
		}

		profile, err := d.client.GetCandidateProfile(args[0])
		if err != nil {
			return fmt.Errorf("%s", skillsense.ErrorDetail(err, "Failed to load candidate profile"))
		}

		renderProfile(os.Stdout, profile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
