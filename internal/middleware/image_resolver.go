package middleware

import (
	"path/filepath"
	"strings"

	"github.com/espanso/espanso-core/internal/event"
)

// ImageResolver is stage 13: it expands a leading "$CONFIG" in an image
// path, normalizes path separators for the host OS, and canonicalizes the
// result (spec §4.2 step 13).
type ImageResolver struct {
	configDir string
}

func NewImageResolver(configDir string) *ImageResolver {
	return &ImageResolver{configDir: configDir}
}

func (*ImageResolver) Name() string { return "ImageResolver" }

func (r *ImageResolver) Next(ev event.Event, _ Dispatch) event.Type {
	ir, ok := ev.Type.(event.ImageRequested)
	if !ok {
		return ev.Type
	}
	return event.ImageResolved{MatchID: ir.MatchID, Path: r.resolve(ir.Path)}
}

func (r *ImageResolver) resolve(path string) string {
	const configVar = "$CONFIG"
	if strings.HasPrefix(path, configVar) {
		path = r.configDir + strings.TrimPrefix(path, configVar)
	}
	path = filepath.FromSlash(path)
	if clean, err := filepath.Abs(path); err == nil {
		return filepath.Clean(clean)
	}
	return filepath.Clean(path)
}
