package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-site/internal/core/logger"
	"portfolio-site/internal/core/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests pass through the logging transport.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	require.NoError(t, logger.Init("development", "debug"))

	client := NewClient(time.Second, proxy.Settings{})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests surface the error.
func TestLoggingRoundTripper_Error(t *testing.T) {
	require.NoError(t, logger.Init("development", "debug"))

	client := NewClient(time.Second, proxy.Settings{})
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestNewClient_Proxy verifies that requests are sent to the configured proxy.
func TestNewClient_Proxy(t *testing.T) {
	var proxiedHost string
	proxySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxiedHost = r.Host
		w.WriteHeader(http.StatusTeapot)
	}))
	defer proxySrv.Close()

	host, port := splitHostPort(t, proxySrv.URL)
	client := NewClient(time.Second, proxy.Settings{Enabled: true, Hostname: host, Port: port})

	resp, err := client.Get("http://api.github.invalid/users/octocat")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "api.github.invalid", proxiedHost)
}
