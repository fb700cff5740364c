package skillsense

import (
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

const candidatesPath = "/hr/candidates"

// CandidateProfile is the aggregated document for a single submission. It is
// read-only from the client's perspective and fetched per view.
type CandidateProfile struct {
	SubmissionID        string          `json:"submission_id"`
	UserID              string          `json:"user_id,omitempty"`
	UserEmail           string          `json:"user_email,omitempty"`
	PersonalInfo        PersonalInfo    `json:"personal_info,omitempty"`
	ProfessionalSummary string          `json:"professional_summary,omitempty"`
	SkillsSummary       string          `json:"skills_summary,omitempty"`
	Skills              Skills          `json:"skills,omitempty"`
	WorkHistory         []WorkEntry     `json:"work_history,omitempty"`
	Education           []Education     `json:"education,omitempty"`
	Certifications      []Certification `json:"certifications,omitempty"`
	Languages           []string        `json:"languages,omitempty"`
	GithubMetrics       *GithubMetrics  `json:"github_metrics,omitempty"`
	WebPresence         map[string]any  `json:"web_presence,omitempty"`
	StackOverflow       *StackOverflow  `json:"stackoverflow_expertise,omitempty"`
	Strengths           []string        `json:"strengths,omitempty"`
	AreasForGrowth      []string        `json:"areas_for_growth,omitempty"`
	RecommendedRoles    []string        `json:"recommended_roles,omitempty"`
	QualityScores       map[string]any  `json:"quality_scores,omitempty"`
	RawData             map[string]any  `json:"raw_data,omitempty"`
}

type PersonalInfo struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
	Website     string `json:"website,omitempty"`
}

type Skills struct {
	TechnicalSkills []string `json:"technical_skills,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Frameworks      []string `json:"frameworks,omitempty"`
	Tools           []string `json:"tools,omitempty"`
}

type WorkEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

type GithubMetrics struct {
	ActivityLevel      string `json:"activity_level,omitempty"`
	CommitQualityScore int    `json:"commit_quality_score,omitempty"`
	CollaborationScore int    `json:"collaboration_score,omitempty"`
	PublicRepos        int    `json:"public_repos,omitempty"`
}

type StackOverflow struct {
	Reputation     int      `json:"reputation,omitempty"`
	Badges         *Badges  `json:"badges,omitempty"`
	ExpertiseAreas []string `json:"expertise_areas,omitempty"`
}

type Badges struct {
	Gold   int `json:"gold,omitempty"`
	Silver int `json:"silver,omitempty"`
	Bronze int `json:"bronze,omitempty"`
}

// Summary holds the aggregate stats endpoint payload. The backend adds fields
// over time, so the raw map rides along next to the known ones.
type Summary struct {
	TotalCandidates      int     `mapstructure:"total_candidates"`
	ProcessedSubmissions int     `mapstructure:"processed_submissions"`
	AverageQualityScore  float64 `mapstructure:"average_quality_score"`
	LastUpdated          string  `mapstructure:"last_updated"`

	Raw map[string]any `mapstructure:"-"`
}

// GetCandidateProfile fetches the full profile document for a submission.
func (c *Client) GetCandidateProfile(submissionID string) (*CandidateProfile, error) {
	if submissionID == "" {
		return nil, fmt.Errorf("submission id is required")
	}

	var profile CandidateProfile
	if err := c.getJSON(fmt.Sprintf("%s/%s", candidatesPath, url.PathEscape(submissionID)), nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// ListCandidates returns summaries for every processed submission.
func (c *Client) ListCandidates() ([]*CandidateSummary, error) {
	var candidates []*CandidateSummary
	if err := c.getJSON(candidatesPath, nil, &candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}

// GetSummary returns the aggregate pipeline stats.
func (c *Client) GetSummary() (*Summary, error) {
	var raw map[string]any
	if err := c.getJSON("/hr/summary", nil, &raw); err != nil {
		return nil, err
	}

	var summary Summary
	if err := mapstructure.WeakDecode(raw, &summary); err != nil {
		return nil, fmt.Errorf("decoding summary: %w", err)
	}
	summary.Raw = raw

	return &summary, nil
}
