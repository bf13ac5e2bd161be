// Package source implements the external dataset client over plain HTTP.
package source

import (
	"context"
	"io"
	"net/http"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type httpSource struct {
	url    string
	client *http.Client
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
}

// New creates a ProductSource that fetches the configured dataset URL.
// The connect/read timeout comes from configuration; failures are surfaced
// to the caller without retries.
func New(params Params) service.ProductSource {
	return &httpSource{
		url: params.Config.Source.URL,
		client: &http.Client{
			Timeout: params.Config.Source.Timeout,
		},
	}
}

// FetchDocument retrieves the raw JSON document from the external dataset.
func (s *httpSource) FetchDocument(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build source request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch source document")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("source returned unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read source response body")
	}

	return body, nil
}
