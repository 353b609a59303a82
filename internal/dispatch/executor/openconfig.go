package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

// ConfigFolderOpener opens the configuration directory in the platform's
// file manager.
type ConfigFolderOpener interface {
	OpenConfigFolder() error
}

// OpenConfig is the Executor for event.ShowConfigFolder.
type OpenConfig struct {
	opener ConfigFolderOpener
}

// NewOpenConfig builds an OpenConfig executor backed by opener.
func NewOpenConfig(opener ConfigFolderOpener) *OpenConfig {
	return &OpenConfig{opener: opener}
}

// Execute implements dispatch.Executor.
func (e *OpenConfig) Execute(ev event.Type) dispatch.Result {
	if _, ok := ev.(event.ShowConfigFolder); !ok {
		return dispatch.Error(fmt.Errorf("open-config executor: unexpected event %T", ev))
	}
	if err := e.opener.OpenConfigFolder(); err != nil {
		return dispatch.Error(err)
	}
	return dispatch.OK()
}
