package registry

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/ajxudir/globup/pkg/verbose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClient tests the behavior of NewClient.
//
// It verifies:
//   - The client points at the public npm registry by default
func TestNewClient(t *testing.T) {
	client := NewClient()

	require.NotNil(t, client)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
}

// TestNewClientWithBaseURL tests the behavior of NewClientWithBaseURL.
//
// It verifies:
//   - Trailing slashes are stripped so request paths never double up
func TestNewClientWithBaseURL(t *testing.T) {
	client := NewClientWithBaseURL("https://example.test/registry/")

	assert.Equal(t, "https://example.test/registry", client.baseURL)
}

// TestLatestVersion_Success tests a successful lookup.
//
// It verifies:
//   - The dist-tag endpoint is hit with JSON accept headers and an
//     identifying User-Agent
//   - The version field of a 200 response is returned with ok == true
func TestLatestVersion_Success(t *testing.T) {
	var gotPath, gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"typescript","version":"5.3.3"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	version, ok := client.LatestVersion(context.Background(), "typescript")

	require.True(t, ok)
	assert.Equal(t, "5.3.3", version)
	assert.Equal(t, "/typescript/latest", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, gotUserAgent, "globup")
}

// TestLatestVersion_ScopedNameEscaped tests scoped package name handling.
//
// It verifies:
//   - The slash inside a scoped name is path-escaped so the name forms a
//     single path segment
func TestLatestVersion_ScopedNameEscaped(t *testing.T) {
	var gotEscapedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEscapedPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"version":"17.1.0"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	version, ok := client.LatestVersion(context.Background(), "@angular/cli")

	require.True(t, ok)
	assert.Equal(t, "17.1.0", version)
	assert.Equal(t, "/@angular%2Fcli/latest", gotEscapedPath)
}

// TestLatestVersion_Failures tests the failure modes that collapse to absent.
//
// It verifies:
//   - 404 responses, malformed bodies, and bodies without a version field
//     all yield ("", false) without an error surfacing
func TestLatestVersion_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{"error":"Not found"}`},
		{"server error", http.StatusInternalServerError, `oops`},
		{"malformed body", http.StatusOK, `not json at all`},
		{"missing version field", http.StatusOK, `{"name":"left-pad"}`},
		{"empty version field", http.StatusOK, `{"version":"  "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClientWithBaseURL(server.URL)
			version, ok := client.LatestVersion(context.Background(), "left-pad")

			assert.False(t, ok)
			assert.Empty(t, version)
		})
	}
}

// TestLatestVersion_EmptyName tests lookup short-circuiting.
//
// It verifies:
//   - Empty and whitespace-only names resolve to absent without any request
func TestLatestVersion_EmptyName(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"version":"1.0.0"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	for _, name := range []string{"", "   ", "\t\n"} {
		version, ok := client.LatestVersion(context.Background(), name)
		assert.False(t, ok)
		assert.Empty(t, version)
	}
	assert.Equal(t, 0, requests)
}

// TestLatestVersion_TransportError tests unreachable registries.
//
// It verifies:
//   - A connection failure yields absent rather than an error
func TestLatestVersion_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClientWithBaseURL(server.URL)
	version, ok := client.LatestVersion(context.Background(), "typescript")

	assert.False(t, ok)
	assert.Empty(t, version)
}

// TestLatestVersion_ContextCancelled tests caller-driven cancellation.
//
// It verifies:
//   - A cancelled context aborts the lookup and yields absent
func TestLatestVersion_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version":"1.0.0"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClientWithBaseURL(server.URL)
	version, ok := client.LatestVersion(ctx, "typescript")

	assert.False(t, ok)
	assert.Empty(t, version)
}

// TestLatestVersion_ConcurrentLookups tests concurrent client use.
//
// It verifies:
//   - A single client resolves parallel lookups without interference
func TestLatestVersion_ConcurrentLookups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version":"2.4.6"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			version, ok := client.LatestVersion(context.Background(), "eslint")
			results[i] = ok && version == "2.4.6"
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.True(t, ok, "lookup %d should resolve", i)
	}
}

// TestLatestVersion_VerboseNotes tests the debug trail of lookups.
//
// It verifies:
//   - Successful lookups note the resolved version
//   - Failed lookups note the package and the reason
func TestLatestVersion_VerboseNotes(t *testing.T) {
	var buf bytes.Buffer
	verbose.SetWriter(&buf)
	verbose.Enable()
	defer func() {
		verbose.Disable()
		verbose.SetWriter(os.Stderr)
	}()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/typescript/latest" {
			_, _ = w.Write([]byte(`{"version":"5.3.3"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	_, ok := client.LatestVersion(context.Background(), "typescript")
	require.True(t, ok)
	assert.Contains(t, buf.String(), "Registry latest for 'typescript': 5.3.3")

	buf.Reset()
	_, ok = client.LatestVersion(context.Background(), "no-such-package")
	require.False(t, ok)
	assert.Contains(t, buf.String(), "Registry lookup for 'no-such-package' yielded nothing: status 404")
}
