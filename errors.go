package layermap

import (
	"errors"
	"fmt"
)

// ErrNotFound is the category every lookup failure belongs to. Use
// errors.Is against it to catch any of the specific failures below, or
// against a specific sentinel to distinguish them.
var ErrNotFound = errors.New("layermap: lookup failed")

var (
	// ErrKeyNotFound reports a query on a key that is not in the map.
	ErrKeyNotFound = fmt.Errorf("%w: key does not exist", ErrNotFound)
	// ErrNoSuccessor reports NextKey on the largest key.
	ErrNoSuccessor = fmt.Errorf("%w: key is the largest key", ErrNotFound)
	// ErrNoPredecessor reports PreviousKey on the smallest key.
	ErrNoPredecessor = fmt.Errorf("%w: key is the smallest key", ErrNotFound)
)
