// Package service defines interfaces for infrastructure services consumed
// by the use cases.
package service

import "context"

// ProductSource fetches the raw product document from the external dataset.
type ProductSource interface {
	// FetchDocument retrieves the raw JSON document. Network and timeout
	// failures surface as errors; no retries are attempted.
	FetchDocument(ctx context.Context) ([]byte, error)
}
