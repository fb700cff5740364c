package skillsense

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/K1ta141k/skillsense-hr/internal/kvstore"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, store kvstore.Store, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(context.Background(), zap.NewNop(), store)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	client.APIURL = server.URL

	return client
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(context.Background(), nil, kvstore.NewMemoryStore()); err == nil {
		t.Fatalf("expected error for nil logger")
	}
	if _, err := New(context.Background(), zap.NewNop(), nil); err == nil {
		t.Fatalf("expected error for nil token store")
	}
}

func TestLoginSendsCredentialsAndReturnsToken(t *testing.T) {
	var gotBody loginRequest
	var gotAuth string

	client := newTestClient(t, kvstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &gotBody); err != nil {
			t.Fatalf("decoding body: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	})

	token, err := client.Login("hr@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("expected tok-123, got %q", token)
	}
	if gotBody.Email != "hr@example.com" || gotBody.Password != "hunter2" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
	if gotAuth != "" {
		t.Fatalf("expected no bearer header without a stored token, got %q", gotAuth)
	}
}

func TestMeSendsBearerToken(t *testing.T) {
	store := kvstore.NewMemoryStore()
	store.Set(TokenKey, "tok-456")

	client := newTestClient(t, store, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-456" {
			t.Fatalf("missing bearer header, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(UserRecord{ID: "u1", Email: "hr@example.com", Role: "admin"})
	})

	user, err := client.Me()
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if user.Role != "admin" {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
}

func TestUnauthorizedFiresHookForAnyEndpoint(t *testing.T) {
	calls := 0

	client := newTestClient(t, kvstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client.SetOnUnauthorized(func() { calls++ })

	if _, err := client.GetCandidateProfile("sub-1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized from profile fetch, got %v", err)
	}
	if _, err := client.MatchCandidates(&MatchRequest{JobDescription: "anything"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized from match submission, got %v", err)
	}

	if calls != 2 {
		t.Fatalf("expected hook fired once per response, got %d", calls)
	}
}

func TestAPIErrorCarriesDetail(t *testing.T) {
	client := newTestClient(t, kvstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "job description too vague"})
	})

	_, err := client.MatchCandidates(&MatchRequest{JobDescription: "short"})
	if err == nil {
		t.Fatalf("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Detail != "job description too vague" {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
	if got := ErrorDetail(err, "fallback"); got != "job description too vague" {
		t.Fatalf("expected detail passthrough, got %q", got)
	}
}

func TestErrorDetailFallsBackWithoutEnvelope(t *testing.T) {
	client := newTestClient(t, kvstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.GetSummary()
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := ErrorDetail(err, "Failed to load summary"); got != "Failed to load summary" {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestMatchCandidatesOmitsUnsetTopN(t *testing.T) {
	var rawBody map[string]any

	client := newTestClient(t, kvstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &rawBody); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		json.NewEncoder(w).Encode(MatchResponse{})
	})

	description := "We are hiring a senior backend engineer with Go experience."
	if _, err := client.MatchCandidates(&MatchRequest{JobDescription: description}); err != nil {
		t.Fatalf("match failed: %v", err)
	}

	if rawBody["job_description"] != description {
		t.Fatalf("job description altered in flight: %v", rawBody["job_description"])
	}
	if _, present := rawBody["top_n"]; present {
		t.Fatalf("top_n should be absent when unset")
	}
}

func TestMatchResponsePreservesBackendOrder(t *testing.T) {
	client := newTestClient(t, kvstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(MatchResponse{
			Matches: []*CandidateMatch{
				{Candidate: CandidateSummary{SubmissionID: "a"}, Analysis: MatchAnalysis{MatchScore: 41}},
				{Candidate: CandidateSummary{SubmissionID: "b"}, Analysis: MatchAnalysis{MatchScore: 99}},
				{Candidate: CandidateSummary{SubmissionID: "c"}, Analysis: MatchAnalysis{MatchScore: 70}},
			},
		})
	})

	resp, err := client.MatchCandidates(&MatchRequest{JobDescription: "ordering check"})
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if resp.Matches[i].Candidate.SubmissionID != id {
			t.Fatalf("expected %q at position %d, got %q", id, i, resp.Matches[i].Candidate.SubmissionID)
		}
	}

	if match := resp.FindBySubmissionID("b"); match == nil || match.Analysis.MatchScore != 99 {
		t.Fatalf("FindBySubmissionID returned wrong match: %+v", match)
	}
}

func TestGetSummaryDecodesKnownFieldsAndKeepsRaw(t *testing.T) {
	client := newTestClient(t, kvstore.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"total_candidates":      12,
			"processed_submissions": 10,
			"average_quality_score": 71.5,
			"pipeline_stage":        "nightly",
		})
	})

	summary, err := client.GetSummary()
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalCandidates != 12 || summary.ProcessedSubmissions != 10 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Raw["pipeline_stage"] != "nightly" {
		t.Fatalf("raw payload not retained: %v", summary.Raw)
	}
}
