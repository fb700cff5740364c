package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the persisted session token",
	Run: func(_ *cobra.Command, _ []string) {
		d, err := newDashboard(context.Background())
		if err != nil {
			log.Fatalf("starting the dashboard: %v", err)
		}

		d.gate.Logout()
		fmt.Println("Logged out.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
