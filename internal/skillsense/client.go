// Package skillsense is the HTTP client for the SkillSense HR backend. All
// candidate matching and profile aggregation happens server-side; this
// package only issues requests and decodes responses.
package skillsense

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/K1ta141k/skillsense-hr/internal/kvstore"

	"go.uber.org/zap"
)

const (
	defaultAPIURL = "http://localhost:8000/api/v1"
	userAgent     = "skillsense-hr-cli"

	// TokenKey is the durable-store key holding the bearer token.
	TokenKey = "hr_token"
)

type Client struct {
	// ctx used only for http requests right now
	ctx            context.Context
	logger         *zap.Logger
	tokens         kvstore.Store
	onUnauthorized func()

	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New creates a backend client. The token store is consulted on every request
// so a token persisted mid-run is picked up without rebuilding the client.
func New(ctx context.Context, logger *zap.Logger, tokens kvstore.Store) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if tokens == nil {
		return nil, errors.New("token store is required")
	}

	return &Client{
		ctx:    ctx,
		logger: logger,
		tokens: tokens,
		APIURL: defaultAPIURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		UserAgent: userAgent,
	}, nil
}

// SetOnUnauthorized registers a hook fired whenever any response comes back
// with a 401 status, regardless of which endpoint produced it.
func (c *Client) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}
