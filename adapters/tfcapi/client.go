// Package tfcapi implements the domain ports against a Terraform Cloud /
// Enterprise compatible v2 API.
//
// All JSON endpoints speak the JSON:API envelope: a top-level data object
// carrying id/type/attributes/relationships on success, or a top-level
// errors list on failure. The configuration upload is the one exception,
// a raw binary PUT against a pre-signed URL.
package tfcapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultAddress is the hosted platform endpoint used when no address is configured.
	DefaultAddress = "app.terraform.io"

	mediaType = "application/vnd.api+json"
)

// Options configures a Client.
type Options struct {
	// Address is the API host, e.g. "app.terraform.io". A full URL including
	// scheme is also accepted for non-TLS test servers.
	Address string
	// Token is the bearer token presented on every API call.
	Token string
	// HTTPClient overrides the token-authenticated client. Mostly for tests.
	HTTPClient *http.Client
}

// Client is a minimal v2 API client implementing the domain ports
// model.WorkspacePort, model.ConfigurationVersionPort, and model.RunPort.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New constructs a Client from options.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		opts = &Options{}
	}
	base, err := parseBaseURL(opts.Address)
	if err != nil {
		return nil, err
	}
	hc := opts.HTTPClient
	if hc == nil {
		if opts.Token == "" {
			return nil, errors.New("tfcapi: token is required")
		}
		// oauth2 wraps the tuned base transport with the Authorization: Bearer header.
		octx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Transport: newTransport()})
		hc = oauth2.NewClient(octx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}))
	}
	return &Client{baseURL: base, httpClient: hc}, nil
}

func parseBaseURL(address string) (*url.URL, error) {
	if address == "" {
		address = DefaultAddress
	}
	if !strings.Contains(address, "://") {
		address = "https://" + address
	}
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("tfcapi: invalid address %q: %w", address, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/v2"
	return u, nil
}

func newTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// --- JSON:API envelope ---

// resource is the data object carried by API responses.
type resource struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes json.RawMessage `json:"attributes"`
}

type document struct {
	Data *resource `json:"data"`
}

// requestDocument is the envelope for create requests.
type requestDocument struct {
	Data requestResource `json:"data"`
}

type requestResource struct {
	Type          string                  `json:"type"`
	Attributes    any                     `json:"attributes,omitempty"`
	Relationships map[string]relationship `json:"relationships,omitempty"`
}

type relationship struct {
	Data resourceIdentifier `json:"data"`
}

type resourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// --- HTTP helpers ---

func (c *Client) get(ctx context.Context, path string) (*resource, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body *requestDocument) (*resource, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// do issues a JSON:API request and decodes the response envelope.
// A nil resource with nil error means the response carried no data object.
func (c *Client) do(ctx context.Context, method, path string, body *requestDocument) (*resource, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mediaType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkError(resp); err != nil {
		return nil, err
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty body, e.g. 204 on some installations.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return doc.Data, nil
}
