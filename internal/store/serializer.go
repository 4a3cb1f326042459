package store

import (
	"bytes"
	"encoding/json"

	"github.com/juju/errors"

	"datakeep/internal/domain"
)

const errTrailingData = errors.ConstError("unexpected data after JSON value")

// JSONSerializer is the default domain.Serializer. With Strict set, unknown
// object fields are rejected on Unmarshal.
type JSONSerializer struct {
	Strict bool
}

// Marshal encodes v as compact single-line JSON.
func (JSONSerializer) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes exactly one JSON value from data into v.
func (s JSONSerializer) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if s.Strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

var _ domain.Serializer = JSONSerializer{}
