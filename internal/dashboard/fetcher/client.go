// Package fetcher downloads feed documents over HTTP according to the configured fetch policy.
package fetcher

import (
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"
)

const DefaultMaxBodyBytes = 32 << 20

type FeedClient interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

type Options struct {
	BaseURL        string
	CacheMode      CacheMode
	Credentials    CredentialsMode
	Username       string
	Password       string
	RequestTimeout time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBodyBytes   int64
}

type feedClient struct {
	client         *http.Client
	baseURL        *url.URL
	cacheMode      CacheMode
	credentials    CredentialsMode
	username       string
	password       string
	maxRetries     int
	initialBackoff time.Duration
	maxBodyBytes   int64
}

// Fetch retries transport failures and 5xx answers with exponential backoff.
// A refused connection, a 4xx answer or a done ctx ends the attempts early.
func (c *feedClient) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	requestURL, err := c.resolve(rawURL)
	if err != nil {
		return nil, fmt.Errorf("FeedClient.Fetch: %w", err)
	}
	backoff := c.initialBackoff
	for attempt := 1; ; attempt++ {
		body, retry, e := c.fetchOnce(ctx, requestURL)
		if e == nil {
			return body, nil
		}
		if !retry || attempt >= c.maxRetries {
			return nil, fmt.Errorf("FeedClient.Fetch after %d attempt(s): %w", attempt, e)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("FeedClient.Fetch: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (c *feedClient) fetchOnce(ctx context.Context, requestURL *url.URL) (body []byte, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/xml, text/xml;q=0.9, */*;q=0.8")
	if c.cacheMode == CacheNoCache || c.cacheMode == CacheNoStore {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}
	if c.sendsCredentials(requestURL) {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		retry = ctx.Err() == nil && !errors.Is(err, syscall.ECONNREFUSED)
		return nil, retry, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, resp.StatusCode >= 500, apperrors.NewHTTPStatusError(requestURL.String(), resp.StatusCode)
	}
	body, err = io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("reading body: %w", err)
	}
	return body, false, nil
}

func (c *feedClient) resolve(rawURL string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, err
	}
	if c.baseURL != nil {
		ref = c.baseURL.ResolveReference(ref)
	}
	if !ref.IsAbs() {
		return nil, fmt.Errorf("feed url %q is relative and no base url is configured", rawURL)
	}
	return ref, nil
}

func (c *feedClient) sendsCredentials(requestURL *url.URL) bool {
	if c.username == "" {
		return false
	}
	switch c.credentials {
	case CredentialsInclude:
		return true
	case CredentialsSameOrigin:
		return c.baseURL != nil &&
			strings.EqualFold(c.baseURL.Scheme, requestURL.Scheme) &&
			strings.EqualFold(c.baseURL.Host, requestURL.Host)
	default:
		return false
	}
}

func NewFeedClient(opts Options) (FeedClient, error) {
	c := &feedClient{
		client: &http.Client{
			Timeout: opts.RequestTimeout,
		},
		cacheMode:      opts.CacheMode,
		credentials:    opts.Credentials,
		username:       opts.Username,
		password:       opts.Password,
		maxRetries:     opts.MaxRetries,
		initialBackoff: opts.InitialBackoff,
		maxBodyBytes:   opts.MaxBodyBytes,
	}
	if opts.BaseURL != "" {
		baseURL, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("NewFeedClient: invalid base url: %w", err)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		c.baseURL = baseURL
	}
	if c.maxRetries < 1 {
		c.maxRetries = 1
	}
	if c.maxBodyBytes <= 0 {
		c.maxBodyBytes = DefaultMaxBodyBytes
	}
	return c, nil
}
