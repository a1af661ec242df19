package httpinfra

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpdomain "qform.io/cli/internal/core/domain/http"
)

func TestRequester_SendsRequestAndReturnsRawResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/questionnaire/", r.URL.Path)
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer server.Close()

	resp, err := NewRequester(server.Client()).Do(context.Background(), httpdomain.RequestContext{
		Method:  http.MethodPost,
		URL:     server.URL + "/api/questionnaire/",
		Headers: map[string]string{"Authorization": "Bearer t"},
		Body:    strings.NewReader("payload"),
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "short and stout", string(body))
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestRequester_ClientErrorReturnedUntouched(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := NewRequester(doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})).Do(context.Background(), httpdomain.RequestContext{Method: http.MethodPost, URL: "http://example.invalid"})

	assert.Same(t, boom, err)
}

func TestRequester_BadURL(t *testing.T) {
	_, err := NewRequester(nil).Do(context.Background(), httpdomain.RequestContext{Method: http.MethodPost, URL: "://bad"})
	assert.Error(t, err)
}

func TestNewClient_LogsThroughTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	var logs strings.Builder
	logger := hclog.New(&hclog.LoggerOptions{Name: "test", Level: hclog.Debug, Output: &logs})

	resp, err := NewClient(0, logger).Post(server.URL, "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, logs.String(), "request done")
	assert.Contains(t, logs.String(), "status=201")
}
