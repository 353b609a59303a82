package iconstatus

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/espanso/espanso-core/internal/event"
)

// Base hues for each status, chosen to match espanso's existing tray icon
// convention: neutral gray-green when active, amber when disabled, red
// when secure input is blocking injection.
var (
	normalColor      = colorful.Color{R: 0.25, G: 0.60, B: 0.35}
	disabledColor    = colorful.Color{R: 0.85, G: 0.65, B: 0.10}
	secureInputColor = colorful.Color{R: 0.80, G: 0.20, B: 0.20}
)

// blendFraction is how far, in Lab space, the tint moves from neutral gray
// toward the status's base hue. Kept well short of 1.0 so the icon stays
// legible at tray-icon sizes.
const blendFraction = 0.72

var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Tint returns the hex RGB color the tray icon should render for status.
func Tint(status event.IconStatus) string {
	return blend(baseColor(status)).Hex()
}

func baseColor(status event.IconStatus) colorful.Color {
	switch status {
	case event.IconDisabled:
		return disabledColor
	case event.IconSecureInput:
		return secureInputColor
	default:
		return normalColor
	}
}

func blend(target colorful.Color) colorful.Color {
	return neutral.BlendLab(target, blendFraction)
}
