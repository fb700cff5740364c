package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/K1ta141k/skillsense-hr/internal/skillsense"

	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in: run `" + app + " login` first")

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List every processed candidate submission",
	RunE: func(_ *cobra.Command, _ []string) error {
		d, err := newDashboard(context.Background())
		if err != nil {
			log.Fatalf("starting the dashboard: %v", err)
		}

		if !d.requireSession() {
			return errNotLoggedIn
		}

		candidates, err := d.client.ListCandidates()
		if err != nil {
			return fmt.Errorf("%s", skillsense.ErrorDetail(err, "Failed to list candidates"))
		}

		if len(candidates) == 0 {
			fmt.Println("No candidates processed yet.")
			return nil
		}

		for _, c := range candidates {
			fmt.Fprintln(os.Stdout, candidateLine(*c))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
}
