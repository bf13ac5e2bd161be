package impl

import (
	"bytes"
	"encoding/json"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"
)

var (
	// ErrMalformedEnvelope is returned when the top-level products field is
	// missing or is not an array.
	ErrMalformedEnvelope = errors.New("products field is missing or not an array")
	// ErrMalformedRecord is returned when a product record fails to decode.
	// A single bad record fails the whole batch; there is no per-record
	// recovery.
	ErrMalformedRecord = errors.New("malformed product record")
)

// catalogDocument captures the envelope of the external dataset. Products is
// kept raw so that a missing field can be told apart from a mistyped one.
type catalogDocument struct {
	Products json.RawMessage `json:"products"`
}

// parseCatalog decodes the raw external document into candidate products.
// Unknown object fields are ignored; the returned slice preserves document
// order and is fully materialized before reconciliation starts.
func parseCatalog(raw []byte) ([]*entity.Product, error) {
	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(ErrMalformedEnvelope, err.Error())
	}

	products := bytes.TrimSpace(doc.Products)
	if len(products) == 0 || products[0] != '[' {
		return nil, errors.WithStack(ErrMalformedEnvelope)
	}

	var candidates []*entity.Product
	if err := json.Unmarshal(products, &candidates); err != nil {
		return nil, errors.Wrap(ErrMalformedRecord, err.Error())
	}

	return candidates, nil
}
