package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with an admin account and persist the session token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := newDashboard(context.Background())
		if err != nil {
			log.Fatalf("starting the dashboard: %v", err)
		}

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			email, err = (&promptui.Prompt{Label: "Email"}).Run()
			if err != nil {
				return err
			}
		}

		password, err := (&promptui.Prompt{Label: "Password", Mask: '*'}).Run()
		if err != nil {
			return err
		}

		if err := d.gate.Login(strings.TrimSpace(email), password); err != nil {
			fmt.Println(loginErrorMessage(err))
			return err
		}

		fmt.Printf("Logged in as %s (%s).\n", d.gate.User().FullName, d.gate.User().Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("email", "e", "", "account email (prompted when omitted)")
}
