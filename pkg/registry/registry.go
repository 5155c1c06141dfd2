// Package registry resolves the latest published version of packages from the
// npm registry.
//
// Lookups hit the registry's dist-tag endpoint
// (GET <base>/<name>/latest) and decode the version field of the response.
// Every failure mode — transport errors, non-200 statuses, unparsable bodies,
// missing version fields — collapses into an absent result rather than an
// error, because a single package that cannot be resolved must never abort a
// whole check run. Callers treat absent results as "latest unknown".
//
// The client carries no timeout of its own; callers bound lookups through the
// context when a deadline is wanted.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ajxudir/globup/pkg/verbose"
)

// DefaultBaseURL is the public npm registry endpoint used by NewClient.
const DefaultBaseURL = "https://registry.npmjs.org"

// userAgent identifies this tool to the registry.
const userAgent = "globup (+https://github.com/ajxudir/globup)"

// Client looks up package versions against an npm-compatible registry.
//
// The zero value is not usable; construct one with NewClient or
// NewClientWithBaseURL. A single Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a registry client against the public npm registry.
//
// Returns:
//   - *Client: a client pointed at DefaultBaseURL
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a registry client against a custom base URL.
//
// It performs the following operations:
//  1. Normalizes the base URL by stripping any trailing slash
//  2. Builds an http.Client without a client-level timeout (deadlines come
//     from the caller's context)
//
// Parameters:
//   - baseURL: registry root, e.g. "https://registry.npmjs.org" or a test
//     server URL
//
// Returns:
//   - *Client: the configured client
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// latestResponse is the subset of the dist-tag endpoint's body we care about.
type latestResponse struct {
	Version string `json:"version"`
}

// LatestVersion resolves the latest published version of a package.
//
// It performs the following operations:
//  1. Path-escapes the package name so scoped names (@scope/pkg) form a
//     single path segment
//  2. Issues GET <base>/<escaped-name>/latest with JSON accept headers
//  3. Decodes the version field from a 200 response
//
// Any failure — empty name, request construction, transport, non-200 status,
// undecodable body, empty version — yields ("", false) and a verbose note,
// never an error: per-package resolution failures must not abort the batch.
//
// Parameters:
//   - ctx: controls cancellation and carries any caller deadline
//   - name: package name as reported by the package manager
//
// Returns:
//   - string: the latest version, empty when absent
//   - bool: true only when a non-empty version was resolved
func (c *Client) LatestVersion(ctx context.Context, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}

	endpoint := c.baseURL + "/" + url.PathEscape(name) + "/latest"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		verbose.RegistryMiss(name, fmt.Sprintf("request setup failed: %v", err))
		return "", false
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		verbose.RegistryMiss(name, fmt.Sprintf("request failed: %v", err))
		return "", false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		verbose.RegistryMiss(name, fmt.Sprintf("reading response failed: %v", err))
		return "", false
	}

	if resp.StatusCode != http.StatusOK {
		verbose.RegistryMiss(name, fmt.Sprintf("status %d", resp.StatusCode))
		return "", false
	}

	var latest latestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		verbose.RegistryMiss(name, fmt.Sprintf("unparsable response: %v", err))
		return "", false
	}

	version := strings.TrimSpace(latest.Version)
	if version == "" {
		verbose.RegistryMiss(name, "response carries no version")
		return "", false
	}

	verbose.RegistryLatest(name, version)
	return version, true
}
