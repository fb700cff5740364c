package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/K1ta141k/skillsense-hr/internal/matchform"
	"github.com/K1ta141k/skillsense-hr/internal/results"
	"github.com/K1ta141k/skillsense-hr/internal/review"
	"github.com/K1ta141k/skillsense-hr/internal/skillsense"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptNewSearch          = "New search"
	PromptViewJobDescription = "View job description"
	PromptOpenProfile        = "Open candidate profile"
	PromptLogout             = "Logout"
	PromptExit               = "Exit"
	PromptBack               = "back"

	genericMatchErrMsg = "Failed to match candidates. Please try again."
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive candidate-matching dashboard",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("job-file", "f", "", "read the job description from a file instead of the prompt")
	runCmd.Flags().IntP("top-n", "n", 0, "limit how many matches the backend returns")
}

// run is the dashboard loop. Each screen decides the next one; redirects
// coming from the session gate or the result store land here as well.
func run(cmd *cobra.Command) error {
	d, err := newDashboard(context.Background())
	if err != nil {
		log.Fatalf("starting the dashboard: %v", err)
	}

	if n, _ := cmd.Flags().GetInt("top-n"); n > 0 {
		d.form.SetTopN(n)
	}

	d.logger.Info("starting "+app, zap.String("version", version), zap.String("api_url", d.client.APIURL))

	// The single startup suspension point: nothing renders before this
	// resolves.
	d.gate.CheckAuth()
	if d.gate.IsAuthenticated() {
		d.next = screenSearch
	} else {
		d.next = screenLogin
	}

	for {
		switch d.next {
		case screenLogin:
			if err := loginScreen(d); err != nil {
				return err
			}
		case screenSearch:
			if err := searchScreen(d, cmd); err != nil {
				return err
			}
		case screenResults:
			if err := resultsScreen(d); err != nil {
				return err
			}
		case screenExit:
			return nil
		}
	}
}

func loginScreen(d *dashboard) error {
	fmt.Println("Sign in with an admin account.")

	for {
		email, err := (&promptui.Prompt{Label: "Email"}).Run()
		if err != nil {
			return err
		}

		password, err := (&promptui.Prompt{Label: "Password", Mask: '*'}).Run()
		if err != nil {
			return err
		}

		if err := d.gate.Login(strings.TrimSpace(email), password); err != nil {
			fmt.Println(loginErrorMessage(err))
			continue
		}

		fmt.Printf("Welcome, %s.\n", d.gate.User().FullName)
		d.next = screenSearch
		return nil
	}
}

func loginErrorMessage(err error) string {
	return skillsense.ErrorDetail(err, err.Error())
}

func searchScreen(d *dashboard, cmd *cobra.Command) error {
	_, action, err := (&promptui.Select{
		Label: "Dashboard",
		Items: []string{PromptNewSearch, PromptLogout, PromptExit},
	}).Run()
	if err != nil {
		return err
	}

	switch action {
	case PromptLogout:
		d.gate.Logout()
		return nil
	case PromptExit:
		d.next = screenExit
		return nil
	}

	draft, err := readJobDescription(cmd)
	if err != nil {
		return err
	}

	d.form.SetJobDescription(draft)

	fmt.Println("Analyzing candidates...")
	if err := d.form.Submit(); err != nil {
		if errors.Is(err, matchform.ErrJobDescriptionTooShort) {
			fmt.Printf("%s (%d characters given, minimum %d required)\n",
				err, len([]rune(draft)), matchform.MinJobDescriptionChars)
			return nil
		}
		if errors.Is(err, skillsense.ErrUnauthorized) {
			// The gate already redirected to the login screen.
			return nil
		}

		fmt.Println(skillsense.ErrorDetail(err, genericMatchErrMsg))
		return nil
	}

	return nil
}

func readJobDescription(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("job-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading job description file: %w", err)
		}
		return string(data), nil
	}

	return (&promptui.Prompt{Label: "Job description"}).Run()
}

func resultsScreen(d *dashboard) error {
	resp, jobDescription, err := d.results.Get()
	if errors.Is(err, results.ErrNoStoredResults) {
		// Hard precondition failed; the store redirected to search already.
		return nil
	}
	if err != nil {
		return err
	}

	expanded := review.NewExpanded()

	for {
		fmt.Printf("\nAnalyzed %d candidates, found %d matches (analyzed at %s)\n",
			resp.TotalCandidatesAnalyzed, resp.TotalMatchesReturned, resp.AnalyzedAt)

		items := make([]string, 0, resp.Len()+5)
		for i, match := range resp.Matches {
			items = append(items, matchLabel(i, match, expanded))
		}
		items = append(items, PromptOpenProfile, PromptViewJobDescription, PromptNewSearch, PromptLogout, PromptExit)

		_, selected, err := (&promptui.Select{
			Label: "Select a candidate to expand or collapse",
			Items: items,
			Size:  12,
		}).Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptViewJobDescription:
			fmt.Printf("\n%s\n", jobDescription)
		case PromptOpenProfile:
			if err := profilePrompt(d, resp); err != nil {
				return err
			}
			if d.next != screenResults {
				return nil
			}
		case PromptNewSearch:
			d.next = screenSearch
			return nil
		case PromptLogout:
			d.gate.Logout()
			return nil
		case PromptExit:
			d.next = screenExit
			return nil
		default:
			id := submissionIDForLabel(resp, expanded, selected)
			if id == "" {
				continue
			}
			expanded = expanded.Toggle(id)
			if match := resp.FindBySubmissionID(id); match != nil {
				rank := matchRank(resp, id)
				renderMatch(os.Stdout, rank, match, expanded.Has(id))
			}
		}
	}
}

// profilePrompt drills into a full candidate profile. Fetch failures render a
// page-level error and drop back to the results list; there is no automatic
// retry.
func profilePrompt(d *dashboard, resp *skillsense.MatchResponse) error {
	items := make([]string, 0, resp.Len()+1)
	for _, match := range resp.Matches {
		items = append(items, candidateLine(match.Candidate))
	}
	items = append(items, PromptBack)

	idx, selected, err := (&promptui.Select{
		Label: "Choose a candidate profile",
		Items: items,
		Size:  12,
	}).Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	profile, err := d.client.GetCandidateProfile(resp.Matches[idx].Candidate.SubmissionID)
	if err != nil {
		if errors.Is(err, skillsense.ErrUnauthorized) {
			return nil
		}
		fmt.Println(skillsense.ErrorDetail(err, "Failed to load candidate profile"))
		return nil
	}

	renderProfile(os.Stdout, profile)
	return nil
}

func matchRank(resp *skillsense.MatchResponse, id string) int {
	for i, match := range resp.Matches {
		if match.Candidate.SubmissionID == id {
			return i
		}
	}
	return 0
}

func submissionIDForLabel(resp *skillsense.MatchResponse, expanded review.Expanded, label string) string {
	for i, match := range resp.Matches {
		if matchLabel(i, match, expanded) == label {
			return match.Candidate.SubmissionID
		}
	}
	return ""
}
