package skillsense

import (
	"go.uber.org/zap"

	"github.com/K1ta141k/skillsense-hr/internal/logger"
)

const matchPath = "/hr/match-candidates"

// MatchRequest is the body of a match submission. TopN is optional and
// omitted from the wire when unset.
type MatchRequest struct {
	JobDescription string `json:"job_description"`
	TopN           int    `json:"top_n,omitempty"`
}

// MatchResponse is the ranked result of a match run. Matches keep the order
// returned by the backend; nothing client-side re-sorts them.
type MatchResponse struct {
	JobDescription          string            `json:"job_description"`
	TotalCandidatesAnalyzed int               `json:"total_candidates_analyzed"`
	TotalMatchesReturned    int               `json:"total_matches_returned"`
	Matches                 []*CandidateMatch `json:"matches"`
	AnalyzedAt              string            `json:"analyzed_at"`
}

type CandidateMatch struct {
	Candidate CandidateSummary `json:"candidate"`
	Analysis  MatchAnalysis    `json:"analysis"`
}

// CandidateSummary is the identity slice of a candidate attached to a match.
// Everything except SubmissionID may be empty.
type CandidateSummary struct {
	SubmissionID        string `json:"submission_id"`
	Name                string `json:"name,omitempty"`
	Email               string `json:"email,omitempty"`
	Location            string `json:"location,omitempty"`
	GithubURL           string `json:"github_url,omitempty"`
	LinkedinURL         string `json:"linkedin_url,omitempty"`
	ProfessionalSummary string `json:"professional_summary,omitempty"`
}

type MatchAnalysis struct {
	MatchScore               int      `json:"match_score"`
	Recommendation           string   `json:"recommendation"`
	KeyStrengths             []string `json:"key_strengths"`
	RelevantExperience       []string `json:"relevant_experience"`
	PotentialConcerns        []string `json:"potential_concerns"`
	SkillGaps                []string `json:"skill_gaps"`
	CulturalFitIndicators    []string `json:"cultural_fit_indicators"`
	OverallAssessment        string   `json:"overall_assessment"`
	InterviewFocusAreas      []string `json:"interview_focus_areas"`
	CompensationExpectations string   `json:"compensation_expectations"`
	AvailabilityConcerns     string   `json:"availability_concerns"`
}

func (m *MatchResponse) Len() int {
	return len(m.Matches)
}

// FindBySubmissionID returns the match for the given submission, or nil.
func (m *MatchResponse) FindBySubmissionID(id string) *CandidateMatch {
	for _, match := range m.Matches {
		if match.Candidate.SubmissionID == id {
			return match
		}
	}
	return nil
}

// MatchCandidates submits a job description for analysis against the whole
// candidate pool and returns the ranked matches.
func (c *Client) MatchCandidates(req *MatchRequest) (*MatchResponse, error) {
	c.logger.Info("submitting match request",
		zap.String("job_description", logger.TruncateForLog(req.JobDescription, 120)),
		zap.Int("top_n", req.TopN),
	)

	var resp MatchResponse
	if err := c.postJSON(matchPath, req, &resp); err != nil {
		return nil, err
	}

	c.logger.Info("match completed",
		zap.Int("candidates_analyzed", resp.TotalCandidatesAnalyzed),
		zap.Int("matches_returned", resp.TotalMatchesReturned),
	)

	return &resp, nil
}
