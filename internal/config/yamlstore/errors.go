package yamlstore

import "errors"

var (
	// ErrNoEffect indicates a YAML match has neither replace nor image set.
	ErrNoEffect = errors.New("yamlstore: match has neither replace nor image")

	// ErrInvalidAppFilter indicates an app-override file's filter regexes
	// failed to compile.
	ErrInvalidAppFilter = errors.New("yamlstore: invalid app filter pattern")
)
