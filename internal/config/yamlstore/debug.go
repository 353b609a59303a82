package yamlstore

import (
	"github.com/tidwall/sjson"

	"github.com/espanso/espanso-core/internal/event"
)

// DumpJSON renders a resolved match as a JSON string for troubleshooting
// (e.g. attached to a show-active-config-info built-in's output). It is
// built incrementally with sjson rather than through encoding/json since
// event.Match's Cause/Effect fields are closed interfaces with no natural
// struct tag mapping.
func DumpJSON(m event.Match) (string, error) {
	doc := "{}"
	var err error

	doc, err = sjson.Set(doc, "id", int32(m.ID))
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "propagate_case", m.PropagateCase)
	if err != nil {
		return "", err
	}

	switch c := m.Cause.(type) {
	case event.TriggerCause:
		doc, err = sjson.Set(doc, "cause.type", "trigger")
		if err == nil {
			doc, err = sjson.Set(doc, "cause.triggers", c.Triggers)
		}
	case event.RegexCause:
		doc, err = sjson.Set(doc, "cause.type", "regex")
		if err == nil {
			doc, err = sjson.Set(doc, "cause.pattern", c.Pattern)
		}
	default:
		doc, err = sjson.Set(doc, "cause.type", "none")
	}
	if err != nil {
		return "", err
	}

	switch e := m.Effect.(type) {
	case event.TextEffect:
		doc, err = sjson.Set(doc, "effect.type", "text")
		if err == nil {
			doc, err = sjson.Set(doc, "effect.replace", e.Replace)
		}
		if err == nil {
			doc, err = sjson.Set(doc, "effect.format", e.Format.String())
		}
	case event.ImageEffect:
		doc, err = sjson.Set(doc, "effect.type", "image")
		if err == nil {
			doc, err = sjson.Set(doc, "effect.path", e.Path)
		}
	default:
		doc, err = sjson.Set(doc, "effect.type", "none")
	}
	if err != nil {
		return "", err
	}

	return doc, nil
}
