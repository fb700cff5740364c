package matchform

import (
	"errors"
	"strings"
	"testing"

	"github.com/K1ta141k/skillsense-hr/internal/kvstore"
	"github.com/K1ta141k/skillsense-hr/internal/results"
	"github.com/K1ta141k/skillsense-hr/internal/skillsense"

	"go.uber.org/zap"
)

type fakeMatcher struct {
	resp  *skillsense.MatchResponse
	err   error
	calls int

	lastRequest *skillsense.MatchRequest
	onCall      func(*fakeMatcher)
}

func (m *fakeMatcher) MatchCandidates(req *skillsense.MatchRequest) (*skillsense.MatchResponse, error) {
	m.calls++
	m.lastRequest = req
	if m.onCall != nil {
		m.onCall(m)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

type fakeNavigator struct {
	resultsRedirects int
	searchRedirects  int
}

func (n *fakeNavigator) RedirectToResults() { n.resultsRedirects++ }
func (n *fakeNavigator) RedirectToSearch()  { n.searchRedirects++ }

func newForm(t *testing.T, matcher Matcher) (*Form, *results.Store, *fakeNavigator) {
	t.Helper()

	nav := &fakeNavigator{}
	store, err := results.New(kvstore.NewMemoryStore(), nav)
	if err != nil {
		t.Fatalf("creating results store: %v", err)
	}

	form, err := New(matcher, store, nav, zap.NewNop())
	if err != nil {
		t.Fatalf("creating form: %v", err)
	}

	return form, store, nav
}

func TestShortDescriptionNeverIssuesRequest(t *testing.T) {
	matcher := &fakeMatcher{}
	form, _, nav := newForm(t, matcher)

	for _, draft := range []string{"", "too short", strings.Repeat("x", 49)} {
		form.SetJobDescription(draft)
		if err := form.Submit(); !errors.Is(err, ErrJobDescriptionTooShort) {
			t.Fatalf("draft %q: expected ErrJobDescriptionTooShort, got %v", draft, err)
		}
	}

	if matcher.calls != 0 {
		t.Fatalf("validation failures must not reach the network, got %d calls", matcher.calls)
	}
	if nav.resultsRedirects != 0 {
		t.Fatalf("no redirect expected on validation failure")
	}
}

func TestExactlyFiftyCharactersSubmitsVerbatim(t *testing.T) {
	matcher := &fakeMatcher{resp: &skillsense.MatchResponse{}}
	form, _, nav := newForm(t, matcher)

	draft := strings.Repeat("g", 50)
	form.SetJobDescription(draft)

	if err := form.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if matcher.lastRequest.JobDescription != draft {
		t.Fatalf("job description altered: %q", matcher.lastRequest.JobDescription)
	}
	if matcher.lastRequest.TopN != 0 {
		t.Fatalf("top_n must stay unset, got %d", matcher.lastRequest.TopN)
	}
	if nav.resultsRedirects != 1 {
		t.Fatalf("expected redirect to results, got %d", nav.resultsRedirects)
	}
}

func TestSuccessfulSubmitStoresResponseAndDescription(t *testing.T) {
	resp := &skillsense.MatchResponse{
		Matches: []*skillsense.CandidateMatch{
			{Candidate: skillsense.CandidateSummary{SubmissionID: "sub-1"}},
		},
	}
	form, store, _ := newForm(t, &fakeMatcher{resp: resp})

	draft := strings.Repeat("backend engineer with Go ", 4)
	form.SetJobDescription(draft)

	if err := form.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	stored, jobDescription, err := store.Get()
	if err != nil {
		t.Fatalf("stored results missing: %v", err)
	}
	if jobDescription != draft {
		t.Fatalf("stored description mangled: %q", jobDescription)
	}
	if len(stored.Matches) != 1 || stored.Matches[0].Candidate.SubmissionID != "sub-1" {
		t.Fatalf("stored response wrong: %+v", stored.Matches)
	}
}

func TestFailedSubmitKeepsDraft(t *testing.T) {
	backendErr := &skillsense.APIError{StatusCode: 500, Detail: "matcher overloaded"}
	form, store, nav := newForm(t, &fakeMatcher{err: backendErr})

	draft := strings.Repeat("d", 60)
	form.SetJobDescription(draft)

	err := form.Submit()
	var apiErr *skillsense.APIError
	if !errors.As(err, &apiErr) || apiErr.Detail != "matcher overloaded" {
		t.Fatalf("expected backend error surfaced, got %v", err)
	}

	if form.JobDescription() != draft {
		t.Fatalf("draft lost on error: %q", form.JobDescription())
	}
	if nav.resultsRedirects != 0 {
		t.Fatalf("no redirect expected on failure")
	}

	nav.searchRedirects = 0
	if _, _, err := store.Get(); !errors.Is(err, results.ErrNoStoredResults) {
		t.Fatalf("nothing should be stored on failure, got %v", err)
	}
}

func TestReentrantSubmitIsRejected(t *testing.T) {
	matcher := &fakeMatcher{resp: &skillsense.MatchResponse{}}
	form, _, _ := newForm(t, matcher)
	form.SetJobDescription(strings.Repeat("r", 50))

	// Re-enter Submit from inside the in-flight request.
	matcher.onCall = func(*fakeMatcher) {
		if err := form.Submit(); !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
	}

	if err := form.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if matcher.calls != 1 {
		t.Fatalf("exactly one request expected, got %d", matcher.calls)
	}
}

func TestClearResetsDraftLocally(t *testing.T) {
	matcher := &fakeMatcher{}
	form, _, _ := newForm(t, matcher)

	form.SetJobDescription("half-finished draft")
	form.SetTopN(5)
	form.Clear()

	if form.JobDescription() != "" {
		t.Fatalf("draft not cleared: %q", form.JobDescription())
	}
	if matcher.calls != 0 {
		t.Fatalf("clear must not touch the network")
	}
}
