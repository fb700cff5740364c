package skillsense

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const contentType = "application/json"

// errorEnvelope is the backend error body for non-2xx responses.
type errorEnvelope struct {
	Detail string `json:"detail"`
}

func (c *Client) getJSON(path string, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, c.APIURL+path, nil)
	if err != nil {
		return err
	}

	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	return c.doJSON(req, target)
}

func (c *Client) postJSON(path string, payload any, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.APIURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	return c.doJSON(req, target)
}

// doJSON performs the request and decodes the response. Every response passes
// through here, so the 401 teardown hook fires uniformly for all endpoints.
func (c *Client) doJSON(req *http.Request, target any) error {
	c.setHeaders(req)

	c.logger.Debug("make request", zap.String("method", req.Method), zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnauthorized)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope errorEnvelope
		// A body that is not the error envelope leaves Detail empty.
		_ = json.Unmarshal(data, &envelope)

		return &APIError{StatusCode: resp.StatusCode, Detail: envelope.Detail}
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}

	return nil
}

// setHeaders attaches the bearer token when one is stored. The login call
// goes through here too: the header is harmless without a session and the
// uniformity keeps the interceptor single-pathed.
func (c *Client) setHeaders(req *http.Request) {
	if token, err := c.tokens.Get(TokenKey); err == nil && token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", contentType)
}
