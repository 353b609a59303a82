package termsim

import "errors"

// ErrNotRunning indicates an operation that requires an initialized screen
// was attempted before Start or after Stop.
var ErrNotRunning = errors.New("termsim: screen not running")
