package model

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when the data of a lazy model is accessed before
// it has been loaded from the ledger.
var ErrNotLoaded = errors.New("model data not yet loaded")

// DataError reports a structural validation failure in model data. Field
// names the offending key and Reason describes the expected shape.
type DataError struct {
	Field  string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid model data: %q %s", e.Field, e.Reason)
}
