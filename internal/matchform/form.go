// Package matchform validates and submits job-description match requests.
package matchform

import (
	"errors"
	"unicode/utf8"

	"github.com/K1ta141k/skillsense-hr/internal/results"
	"github.com/K1ta141k/skillsense-hr/internal/skillsense"

	"go.uber.org/zap"
)

// MinJobDescriptionChars is the minimum length accepted before any request is
// issued.
const MinJobDescriptionChars = 50

var (
	// ErrJobDescriptionTooShort is the client-side validation failure. No
	// network call has been made when it is returned.
	ErrJobDescriptionTooShort = errors.New("job description must be at least 50 characters long")

	// ErrSubmissionInFlight rejects a re-entrant submit while a request is
	// still outstanding.
	ErrSubmissionInFlight = errors.New("a match request is already in flight")
)

// Matcher is the slice of the backend client the form depends on.
type Matcher interface {
	MatchCandidates(req *skillsense.MatchRequest) (*skillsense.MatchResponse, error)
}

// Navigator transfers control to the results view after a successful submit.
type Navigator interface {
	RedirectToResults()
}

// Form holds the draft job description and submits it. Submission is
// mutually exclusive: a second Submit while one is outstanding is rejected.
type Form struct {
	matcher Matcher
	results *results.Store
	nav     Navigator
	logger  *zap.Logger

	jobDescription string
	topN           int
	submitting     bool
}

func New(matcher Matcher, store *results.Store, nav Navigator, logger *zap.Logger) (*Form, error) {
	if matcher == nil {
		return nil, errors.New("matcher is required")
	}
	if store == nil {
		return nil, errors.New("results store is required")
	}
	if nav == nil {
		return nil, errors.New("navigator is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Form{matcher: matcher, results: store, nav: nav, logger: logger}, nil
}

func (f *Form) SetJobDescription(text string) {
	f.jobDescription = text
}

func (f *Form) JobDescription() string {
	return f.jobDescription
}

// SetTopN limits how many matches the backend returns. Zero leaves the limit
// to the backend default and keeps top_n off the wire.
func (f *Form) SetTopN(n int) {
	f.topN = n
}

// Clear resets the draft. Purely local, no network effect.
func (f *Form) Clear() {
	f.jobDescription = ""
	f.topN = 0
}

func (f *Form) Submitting() bool {
	return f.submitting
}

// Submit validates the draft and issues the match request. On success the
// response and the raw description land in the results store and control
// moves to the results view. On failure the draft stays populated so the
// caller can correct and resubmit.
func (f *Form) Submit() error {
	if f.submitting {
		return ErrSubmissionInFlight
	}

	if utf8.RuneCountInString(f.jobDescription) < MinJobDescriptionChars {
		return ErrJobDescriptionTooShort
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	req := &skillsense.MatchRequest{
		JobDescription: f.jobDescription,
		TopN:           f.topN,
	}

	resp, err := f.matcher.MatchCandidates(req)
	if err != nil {
		return err
	}

	if err := f.results.Put(resp, f.jobDescription); err != nil {
		return err
	}

	f.logger.Debug("match results stored", zap.Int("matches", resp.Len()))

	f.nav.RedirectToResults()

	return nil
}
