package yamlstore

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/event"
)

// decodeMatch converts a yamlMatch into an event.Match bound to id.
func decodeMatch(id event.MatchID, m yamlMatch) (event.Match, error) {
	cause, err := decodeCause(m)
	if err != nil {
		return event.Match{}, fmt.Errorf("match %d: %w", id, err)
	}
	effect, err := decodeEffect(m)
	if err != nil {
		return event.Match{}, fmt.Errorf("match %d: %w", id, err)
	}
	return event.Match{
		ID:            id,
		Cause:         cause,
		Effect:        effect,
		PropagateCase: m.Propagate,
	}, nil
}

func decodeCause(m yamlMatch) (event.Cause, error) {
	switch {
	case m.Regex != "":
		return event.RegexCause{Pattern: m.Regex}, nil
	case len(m.Triggers) > 0:
		return event.TriggerCause{
			Triggers:      m.Triggers,
			LeftWord:      m.LeftWord,
			RightWord:     m.RightWord,
			PropagateCase: m.Propagate,
		}, nil
	case m.Trigger != "":
		return event.TriggerCause{
			Triggers:      []string{m.Trigger},
			LeftWord:      m.LeftWord,
			RightWord:     m.RightWord,
			PropagateCase: m.Propagate,
		}, nil
	default:
		return event.NoCause{}, nil
	}
}

func decodeEffect(m yamlMatch) (event.Effect, error) {
	switch {
	case m.Image != "":
		return event.ImageEffect{Path: m.Image}, nil
	case m.Replace != "":
		vars := make([]event.Variable, 0, len(m.Vars))
		for _, v := range m.Vars {
			vars = append(vars, decodeVariable(v))
		}
		return event.TextEffect{
			Replace: m.Replace,
			Format:  decodeFormat(m.Format),
			Vars:    vars,
		}, nil
	default:
		return nil, ErrNoEffect
	}
}

func decodeFormat(format string) event.Format {
	switch format {
	case "html":
		return event.FormatHTML
	case "markdown":
		return event.FormatMarkdown
	default:
		return event.FormatPlain
	}
}

func decodeVariable(v yamlVariable) event.Variable {
	params := make(map[string]event.Value, len(v.Params))
	for k, raw := range v.Params {
		params[k] = decodeValue(raw)
	}
	return event.Variable{
		Name:       v.Name,
		VarType:    v.Type,
		Params:     params,
		InjectVars: v.Inject,
		DependsOn:  v.Depends,
	}
}

// decodeValue converts a YAML-decoded any (string/float64/bool/slice/map,
// the shapes goccy/go-yaml produces for untyped interface{} targets) into
// event.Value.
func decodeValue(raw any) event.Value {
	switch v := raw.(type) {
	case string:
		return event.Value{Str: v, Is: event.KindString}
	case float64:
		return event.Value{Num: v, Is: event.KindNumber}
	case int:
		return event.Value{Num: float64(v), Is: event.KindNumber}
	case bool:
		return event.Value{Bool: v, Is: event.KindBool}
	case []any:
		list := make([]event.Value, 0, len(v))
		for _, item := range v {
			list = append(list, decodeValue(item))
		}
		return event.Value{List: list, Is: event.KindList}
	case map[string]any:
		m := make(map[string]event.Value, len(v))
		for k, item := range v {
			m[k] = decodeValue(item)
		}
		return event.Value{Map: m, Is: event.KindMap}
	default:
		return event.Value{Is: event.KindNil}
	}
}
