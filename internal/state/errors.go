package state

import "errors"

// ErrDuplicateMatchID indicates two matches in a cache's source list share
// an id.
var ErrDuplicateMatchID = errors.New("state: duplicate match id")
