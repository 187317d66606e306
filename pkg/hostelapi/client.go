// Package hostelapi is the typed HTTP client for the hostel management
// backend. Every call translates into one request against the backend's REST
// API; session-bound calls forward the browser's session cookie. Failures are
// always distinguishable from empty successes: a non-2xx status yields a
// *RequestError carrying the server's message, or one synthesized from the
// status code when the body has none.
package hostelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

type Options struct {
	BaseURL         string
	Timeout         time.Duration
	SidCookieKey    string
	RequestIDHeader string
}

type Client struct {
	baseURL         *url.URL
	httpClient      *http.Client
	sidCookieKey    string
	requestIDHeader string
}

func New(opts Options) (*Client, error) {
	baseURL := strings.TrimSpace(opts.BaseURL)
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("hostelapi: invalid base URL %q", baseURL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	sidCookieKey := opts.SidCookieKey
	if sidCookieKey == "" {
		sidCookieKey = "sid"
	}
	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        200,
				MaxIdleConnsPerHost: 200,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		sidCookieKey:    sidCookieKey,
		requestIDHeader: opts.RequestIDHeader,
	}, nil
}

// SidCookieKey is the name of the backend's session cookie.
func (c *Client) SidCookieKey() string {
	return c.sidCookieKey
}

type messageBody struct {
	Message string `json:"message"`
}

// do performs one JSON round trip. sid, when non-empty, is sent as the
// backend's session cookie. The response cookies are returned so that auth
// calls can re-issue the backend session to the browser.
func (c *Client) do(ctx context.Context, method, path, sid string, query url.Values, reqBody, out any) ([]*http.Cookie, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return nil, errors.Wrap(err, "hostelapi: marshal request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "hostelapi: build request")
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.requestIDHeader != "" {
		req.Header.Set(c.requestIDHeader, uuid.NewString())
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: c.sidCookieKey, Value: sid})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "hostelapi: request")
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "hostelapi: read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := &RequestError{Status: resp.StatusCode}
		var msg messageBody
		if err := json.Unmarshal(respBody, &msg); err == nil && strings.TrimSpace(msg.Message) != "" {
			reqErr.Message = msg.Message
		} else {
			reqErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return resp.Cookies(), reqErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.Cookies(), errors.Wrap(err, "hostelapi: unmarshal response")
		}
	}
	return resp.Cookies(), nil
}

// dataEnvelope is the backend's standard success wrapper.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}
