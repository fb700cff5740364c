package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/K1ta141k/skillsense-hr/internal/review"
	"github.com/K1ta141k/skillsense-hr/internal/skillsense"
)

const previewItems = 3

func matchLabel(index int, match *skillsense.CandidateMatch, expanded review.Expanded) string {
	marker := "+"
	if expanded.Has(match.Candidate.SubmissionID) {
		marker = "-"
	}

	name := match.Candidate.Name
	if name == "" {
		name = "No name available"
	}

	return fmt.Sprintf("[%s] #%d %s / score %d (%s) / %s",
		marker,
		index+1,
		name,
		match.Analysis.MatchScore,
		review.BandForScore(match.Analysis.MatchScore),
		match.Analysis.Recommendation,
	)
}

func candidateLine(c skillsense.CandidateSummary) string {
	parts := []string{c.SubmissionID}
	if c.Name != "" {
		parts = append(parts, c.Name)
	}
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Location != "" {
		parts = append(parts, c.Location)
	}
	return strings.Join(parts, " / ")
}

// renderMatch prints one result card. Collapsed cards show the quick summary
// (previews of strengths and concerns plus the assessment); expanded cards
// show the full analysis.
func renderMatch(w io.Writer, rank int, match *skillsense.CandidateMatch, expanded bool) {
	name := match.Candidate.Name
	if name == "" {
		name = "No name available"
	}

	fmt.Fprintf(w, "\n#%d %s\n", rank+1, name)
	if match.Candidate.Email != "" {
		fmt.Fprintf(w, "   %s\n", match.Candidate.Email)
	}
	if match.Candidate.Location != "" {
		fmt.Fprintf(w, "   %s\n", match.Candidate.Location)
	}
	if match.Candidate.ProfessionalSummary != "" {
		fmt.Fprintf(w, "   %s\n", match.Candidate.ProfessionalSummary)
	}

	fmt.Fprintf(w, "   Match score: %d (%s)   Recommendation: %s (%s)\n",
		match.Analysis.MatchScore,
		review.BandForScore(match.Analysis.MatchScore),
		match.Analysis.Recommendation,
		review.BandForRecommendation(match.Analysis.Recommendation),
	)

	renderList(w, "Key strengths", review.Preview(match.Analysis.KeyStrengths, previewItems))
	renderList(w, "Potential concerns", review.Preview(match.Analysis.PotentialConcerns, previewItems))

	if match.Analysis.OverallAssessment != "" {
		fmt.Fprintf(w, "   Assessment: %s\n", match.Analysis.OverallAssessment)
	}

	if !expanded {
		return
	}

	renderList(w, "Relevant experience", match.Analysis.RelevantExperience)
	renderList(w, "Skill gaps", match.Analysis.SkillGaps)
	renderList(w, "Cultural fit indicators", match.Analysis.CulturalFitIndicators)
	renderList(w, "Interview focus areas", match.Analysis.InterviewFocusAreas)

	if match.Analysis.CompensationExpectations != "" {
		fmt.Fprintf(w, "   Compensation expectations: %s\n", match.Analysis.CompensationExpectations)
	}
	if match.Analysis.AvailabilityConcerns != "" {
		fmt.Fprintf(w, "   Availability concerns: %s\n", match.Analysis.AvailabilityConcerns)
	}
}

func renderList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(w, "   %s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "     - %s\n", item)
	}
}

func renderProfile(w io.Writer, p *skillsense.CandidateProfile) {
	name := p.PersonalInfo.Name
	if name == "" {
		name = p.SubmissionID
	}

	fmt.Fprintf(w, "\n%s\n", name)
	if p.PersonalInfo.Email != "" {
		fmt.Fprintf(w, "  %s\n", p.PersonalInfo.Email)
	}
	if p.PersonalInfo.Location != "" {
		fmt.Fprintf(w, "  %s\n", p.PersonalInfo.Location)
	}
	if p.PersonalInfo.GithubURL != "" {
		fmt.Fprintf(w, "  GitHub: %s\n", p.PersonalInfo.GithubURL)
	}
	if p.PersonalInfo.LinkedinURL != "" {
		fmt.Fprintf(w, "  LinkedIn: %s\n", p.PersonalInfo.LinkedinURL)
	}

	if p.ProfessionalSummary != "" {
		fmt.Fprintf(w, "\n  Summary: %s\n", p.ProfessionalSummary)
	}
	if p.SkillsSummary != "" {
		fmt.Fprintf(w, "  Skills summary: %s\n", p.SkillsSummary)
	}

	renderList(w, "Technical skills", p.Skills.TechnicalSkills)
	renderList(w, "Languages", p.Skills.Languages)
	renderList(w, "Frameworks", p.Skills.Frameworks)
	renderList(w, "Tools", p.Skills.Tools)

	if len(p.WorkHistory) > 0 {
		fmt.Fprintf(w, "   Work history:\n")
		for _, job := range p.WorkHistory {
			fmt.Fprintf(w, "     - %s at %s (%s)\n", job.Title, job.Company, job.Duration)
		}
	}

	if len(p.Education) > 0 {
		fmt.Fprintf(w, "   Education:\n")
		for _, edu := range p.Education {
			fmt.Fprintf(w, "     - %s, %s (%s)\n", edu.Degree, edu.Institution, edu.Year)
		}
	}

	if len(p.Certifications) > 0 {
		fmt.Fprintf(w, "   Certifications:\n")
		for _, cert := range p.Certifications {
			fmt.Fprintf(w, "     - %s (%s)\n", cert.Name, cert.Issuer)
		}
	}

	if m := p.GithubMetrics; m != nil {
		fmt.Fprintf(w, "   GitHub: activity %s, commit quality %d/100, collaboration %d/100, %d public repos\n",
			m.ActivityLevel, m.CommitQualityScore, m.CollaborationScore, m.PublicRepos)
	}

	if so := p.StackOverflow; so != nil {
		fmt.Fprintf(w, "   Stack Overflow: %d reputation", so.Reputation)
		if so.Badges != nil {
			fmt.Fprintf(w, " (gold %d, silver %d, bronze %d)", so.Badges.Gold, so.Badges.Silver, so.Badges.Bronze)
		}
		fmt.Fprintln(w)
		renderList(w, "Expertise areas", so.ExpertiseAreas)
	}

	renderList(w, "Strengths", p.Strengths)
	renderList(w, "Areas for growth", p.AreasForGrowth)
	renderList(w, "Recommended roles", p.RecommendedRoles)
}

func renderSummary(w io.Writer, s *skillsense.Summary) {
	fmt.Fprintf(w, "Total candidates:      %d\n", s.TotalCandidates)
	fmt.Fprintf(w, "Processed submissions: %d\n", s.ProcessedSubmissions)
	fmt.Fprintf(w, "Average quality score: %.1f\n", s.AverageQualityScore)
	if s.LastUpdated != "" {
		fmt.Fprintf(w, "Last updated:          %s\n", s.LastUpdated)
	}
}
