package cmd

import (
	"context"

	"github.com/K1ta141k/skillsense-hr/internal/kvstore"
	"github.com/K1ta141k/skillsense-hr/internal/logger"
	"github.com/K1ta141k/skillsense-hr/internal/matchform"
	"github.com/K1ta141k/skillsense-hr/internal/results"
	"github.com/K1ta141k/skillsense-hr/internal/session"
	"github.com/K1ta141k/skillsense-hr/internal/skillsense"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// screen is the view the dashboard loop renders next.
type screen int

const (
	screenLogin screen = iota
	screenSearch
	screenResults
	screenExit
)

// dashboard wires the client, the session gate, the match form and the
// result store together and acts as the navigator for all of them: a
// redirect is a jump to another screen of the run loop.
type dashboard struct {
	logger  *zap.Logger
	config  *Config
	client  *skillsense.Client
	gate    *session.Gate
	form    *matchform.Form
	results *results.Store

	next screen
}

func (d *dashboard) RedirectToLogin()   { d.next = screenLogin }
func (d *dashboard) RedirectToSearch()  { d.next = screenSearch }
func (d *dashboard) RedirectToResults() { d.next = screenResults }

func newDashboard(ctx context.Context) (*dashboard, error) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, err
	}

	config, err := getConfig()
	if err != nil {
		return nil, err
	}

	tokens, err := kvstore.NewFileStore(config.TokenFile)
	if err != nil {
		return nil, err
	}

	client, err := skillsense.New(ctx, zlog, tokens)
	if err != nil {
		return nil, err
	}
	if config.APIURL != "" {
		client.APIURL = config.APIURL
	}
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	d := &dashboard{
		logger: zlog,
		config: config,
		client: client,
	}

	gate, err := session.NewGate(client, tokens, d, zlog)
	if err != nil {
		return nil, err
	}
	d.gate = gate
	client.SetOnUnauthorized(gate.HandleUnauthorized)

	store, err := results.New(kvstore.NewMemoryStore(), d)
	if err != nil {
		return nil, err
	}
	d.results = store

	form, err := matchform.New(client, store, d, zlog)
	if err != nil {
		return nil, err
	}
	if config.TopN > 0 {
		form.SetTopN(config.TopN)
	}
	d.form = form

	return d, nil
}

// requireSession restores the session from the persisted token for the
// one-shot commands. It returns false when no admin session exists.
func (d *dashboard) requireSession() bool {
	d.gate.CheckAuth()
	return d.gate.IsAuthenticated()
}
