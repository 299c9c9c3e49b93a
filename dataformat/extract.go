package dataformat

import (
	"maps"

	"github.com/coalaip/go-coalaip/vocabulary"
)

// Extracted is a raw record split into its plain data and linked-data
// metadata. Absent metadata is reported as the zero value: an empty Type or
// ID, a nil Context.
type Extracted struct {
	Data    map[string]any
	Type    string
	Context any
	ID      string
}

// Extract splits data into plain fields and linked-data metadata according
// to format. The returned data copy has the format's metadata keys removed;
// the input record is never modified. An empty format is inferred from the
// record itself (see Infer).
//
// Extraction from the IPLD format fails with ErrNotImplemented; an
// unrecognised format fails with an InvalidFormatError. A type or id key
// holding a non-string value fails with a *MalformedValueError carrying the
// offending value, so a malformed record is never silently stripped.
func Extract(data map[string]any, format Format) (Extracted, error) {
	if format == "" {
		format = Infer(data)
	}

	switch format {
	case JSONLD:
		return extractKeys(data, vocabulary.KeyType, vocabulary.KeyContext, vocabulary.KeyID)
	case JSON:
		return extractKeys(data, vocabulary.KeyPlainType, "", "")
	case IPLD:
		return Extracted{}, ErrNotImplemented
	default:
		return Extracted{}, &InvalidFormatError{Format: format}
	}
}

// Infer guesses the format of a raw record: a record carrying any of the
// linked-data metadata keys is jsonld, anything else is plain json.
func Infer(data map[string]any) Format {
	for _, key := range []string{vocabulary.KeyType, vocabulary.KeyContext, vocabulary.KeyID} {
		if v, ok := data[key]; ok && v != nil && v != "" {
			return JSONLD
		}
	}
	return JSON
}

func extractKeys(orig map[string]any, typeKey, contextKey, idKey string) (Extracted, error) {
	data := maps.Clone(orig)
	if data == nil {
		data = map[string]any{}
	}

	var result Extracted
	var err error
	if typeKey != "" {
		if result.Type, err = takeString(data, typeKey); err != nil {
			return Extracted{}, err
		}
	}
	if contextKey != "" {
		if v, ok := data[contextKey]; ok {
			result.Context = v
			delete(data, contextKey)
		}
	}
	if idKey != "" {
		if result.ID, err = takeString(data, idKey); err != nil {
			return Extracted{}, err
		}
	}
	result.Data = data
	return result, nil
}

// takeString removes key from data and returns its string value. An absent
// or nil value yields the empty string; any other non-string value is a
// *MalformedValueError.
func takeString(data map[string]any, key string) (string, error) {
	v, ok := data[key]
	if !ok {
		return "", nil
	}
	delete(data, key)
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedValueError{Key: key, Value: v}
	}
	return s, nil
}
