// Package results hands a match response from the submission flow to the
// results view through session-scoped storage.
package results

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/K1ta141k/skillsense-hr/internal/kvstore"
	"github.com/K1ta141k/skillsense-hr/internal/skillsense"
)

const (
	resultsKey        = "matchResults"
	jobDescriptionKey = "jobDescription"
)

// ErrNoStoredResults means the results view was activated without a prior
// submission in this session. The caller has already been redirected.
var ErrNoStoredResults = errors.New("no stored match results")

// Navigator is the slice of navigation the store needs when its hard
// precondition fails.
type Navigator interface {
	RedirectToSearch()
}

// Store owns the two fixed session keys. A later Put replaces the previous
// payload wholesale; entries are never expired.
type Store struct {
	session kvstore.Store
	nav     Navigator
}

func New(session kvstore.Store, nav Navigator) (*Store, error) {
	if session == nil {
		return nil, errors.New("session store is required")
	}
	if nav == nil {
		return nil, errors.New("navigator is required")
	}

	return &Store{session: session, nav: nav}, nil
}

// Put stores the match response and the raw job description it was produced
// from.
func (s *Store) Put(resp *skillsense.MatchResponse, jobDescription string) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding match results: %w", err)
	}

	if err := s.session.Set(resultsKey, string(data)); err != nil {
		return err
	}

	return s.session.Set(jobDescriptionKey, jobDescription)
}

// Get loads the stored response and job description. A missing payload
// redirects to the search entry point and returns ErrNoStoredResults; the
// results view has no other data source.
func (s *Store) Get() (*skillsense.MatchResponse, string, error) {
	data, err := s.session.Get(resultsKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		s.nav.RedirectToSearch()
		return nil, "", ErrNoStoredResults
	}
	if err != nil {
		return nil, "", err
	}

	var resp skillsense.MatchResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil, "", fmt.Errorf("decoding stored match results: %w", err)
	}

	jobDescription, err := s.session.Get(jobDescriptionKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		jobDescription = ""
	} else if err != nil {
		return nil, "", err
	}

	return &resp, jobDescription, nil
}
