package coalaip

import "errors"

// ErrMissingSource is returned by DeriveRight when neither a source right
// nor an "allowedBy" key is given.
var ErrMissingSource = errors.New("source right required when \"allowedBy\" is not given")

// ErrMissingRight is returned by TransferRight when no right is given.
var ErrMissingRight = errors.New("a right must be given")

// ErrNotCurrentHolder is returned by DeriveRight when the caller does not
// hold the source right according to the ledger.
var ErrNotCurrentHolder = errors.New("current holder does not own the source right")
