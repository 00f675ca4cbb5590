package store

import "errors"

// ErrRemovalAnomaly marks a delete that affected more than one row. Identity
// uniqueness is violated and the catalog must not continue on top of it.
var ErrRemovalAnomaly = errors.New("removal affected more than one row")
