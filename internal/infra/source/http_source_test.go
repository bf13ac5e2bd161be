package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(url string, timeout time.Duration) *httpSource {
	return New(Params{
		Config: &config.Config{
			Source: config.SourceConfig{
				URL:     url,
				Timeout: timeout,
			},
		},
	}).(*httpSource)
}

func TestHTTPSource_FetchDocument_Success(t *testing.T) {
	body := `{"products": []}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(body))
	}))
	defer server.Close()

	source := newTestSource(server.URL, 5*time.Second)

	raw, err := source.FetchDocument(context.Background())
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
}

func TestHTTPSource_FetchDocument_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := newTestSource(server.URL, 5*time.Second)

	raw, err := source.FetchDocument(context.Background())
	assert.Nil(t, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestHTTPSource_FetchDocument_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	source := newTestSource(server.URL, 20*time.Millisecond)

	raw, err := source.FetchDocument(context.Background())
	assert.Nil(t, raw)
	assert.Error(t, err)
}

func TestHTTPSource_FetchDocument_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	source := newTestSource(server.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	raw, err := source.FetchDocument(ctx)
	assert.Nil(t, raw)
	assert.Error(t, err)
}
