package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

// ImageInjector pastes the image found at an already-resolved, absolute
// path into the focused application.
type ImageInjector interface {
	InjectImage(path string) error
}

// Image is the Executor for event.ImageInject.
type Image struct {
	injector ImageInjector
}

// NewImage builds an Image executor backed by injector.
func NewImage(injector ImageInjector) *Image {
	return &Image{injector: injector}
}

// Execute implements dispatch.Executor.
func (e *Image) Execute(ev event.Type) dispatch.Result {
	img, ok := ev.(event.ImageInject)
	if !ok {
		return dispatch.Error(fmt.Errorf("image executor: unexpected event %T", ev))
	}
	if err := e.injector.InjectImage(img.Path); err != nil {
		return dispatch.Error(err)
	}
	return dispatch.OK()
}
