// Package dataformat defines the wire formats supported for COALA IP
// entities and the extraction of linked-data metadata from raw records.
package dataformat

import (
	"errors"
	"fmt"
)

// Format selects one of the supported wire formats.
type Format string

// Supported wire format selectors.
const (
	// JSON is the plain-object format; the entity type travels under "type".
	JSON Format = "json"

	// JSONLD is the linked-data format; type, context, and identifier travel
	// under "@type", "@context", and "@id".
	JSONLD Format = "jsonld"

	// IPLD is the content-addressed format. Recognised but not implemented;
	// every operation against it fails with ErrNotImplemented.
	IPLD Format = "ipld"
)

// ErrNotImplemented is returned for any operation against the IPLD format.
var ErrNotImplemented = errors.New("ipld support not implemented")

// InvalidFormatError reports a format selector outside the supported set.
type InvalidFormatError struct {
	Format Format
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("data format must be one of %q, %q, or %q, got %q",
		JSON, JSONLD, IPLD, string(e.Format))
}

// MalformedValueError reports a metadata key of a raw record holding a value
// of the wrong type, carrying the offending value.
type MalformedValueError struct {
	Key   string
	Value any
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("metadata key %q must be a string, got %T (%v)", e.Key, e.Value, e.Value)
}

// Parse validates a format selector string.
func Parse(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, JSONLD, IPLD:
		return f, nil
	default:
		return "", &InvalidFormatError{Format: f}
	}
}

// IsValid reports whether f is one of the supported selectors.
func (f Format) IsValid() bool {
	switch f {
	case JSON, JSONLD, IPLD:
		return true
	}
	return false
}

func (f Format) String() string { return string(f) }
