package builtin

import "errors"

// ErrDuplicateID indicates two built-ins in a catalog share an id.
var ErrDuplicateID = errors.New("builtin: duplicate match id")
