package event

// MatchID identifies a configured match. IDs in [BuiltinIDBase, ∞) are
// reserved for built-in matches and hotkeys (see internal/builtin).
type MatchID int32

// BuiltinIDBase is the first reserved built-in match id, per spec §6.
const BuiltinIDBase MatchID = 1_000_000_000

// Format is the rendering format of a text match's body.
type Format int

const (
	FormatPlain Format = iota
	FormatHTML
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	default:
		return "plain"
	}
}

// Cause is the closed set of ways a match can be triggered: a literal
// trigger string (or list of strings), a regular expression, or nothing
// (for matches only reachable via explicit invocation, e.g. built-ins).
type Cause interface {
	isCause()
}

// TriggerCause fires when any of Triggers is typed, subject to the word
// boundary flags.
type TriggerCause struct {
	Triggers      []string
	LeftWord      bool
	RightWord     bool
	PropagateCase bool
}

func (TriggerCause) isCause() {}

// RegexCause fires when Pattern matches a suffix of the recent input
// buffer. Named capture groups become the detected match's Args.
type RegexCause struct {
	Pattern string
}

func (RegexCause) isCause() {}

// NoCause means the match has no typed trigger; it can only be invoked
// explicitly (hotkey, search bar selection, built-in dispatch).
type NoCause struct{}

func (NoCause) isCause() {}

// Effect is the closed set of what firing a match produces.
type Effect interface {
	isEffect()
}

// TextEffect replaces the trigger with rendered text in one of three
// formats, using the given variables for substitution.
type TextEffect struct {
	Replace string
	Format  Format
	Vars    []Variable
}

func (TextEffect) isEffect() {}

// ImageEffect replaces the trigger with an image at Path.
type ImageEffect struct {
	Path string
}

func (ImageEffect) isEffect() {}

// NoEffect fires nothing visible; used for built-ins that only emit control
// events (e.g. "exit", "restart").
type NoEffect struct{}

func (NoEffect) isEffect() {}

// Variable describes one substitution source available to the renderer.
// VarType selects the extension that evaluates it ("echo", "shell",
// "script", "json", "ai", "date", "random", "global", "match", "form", ...).
type Variable struct {
	Name       string
	VarType    string
	Params     map[string]Value
	InjectVars bool
	DependsOn  []string
}

// Value is a dynamically typed variable parameter, mirroring the original
// implementation's loosely typed YAML param values (string, number, bool,
// list, or nested map).
type Value struct {
	Str  string
	Num  float64
	Bool bool
	List []Value
	Map  map[string]Value
	Is   ValueKind
}

// ValueKind tags which field of Value is populated.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
	KindList
	KindMap
	KindNil
)

// StringValue is a convenience constructor for a string Value.
func StringValue(s string) Value { return Value{Str: s, Is: KindString} }

// Match is a fully configured rule: what causes it to fire (Cause) and
// what firing produces (Effect).
type Match struct {
	ID            MatchID
	Cause         Cause
	Effect        Effect
	PropagateCase bool
}

// DetectedMatch is what the matcher reports when a Cause fires: the match
// id plus enough context (the literal trigger occurrence and its
// separators) for the renderer and the compensation middleware to do their
// jobs.
type DetectedMatch struct {
	ID             MatchID
	Trigger        string
	LeftSeparator  string
	RightSeparator string
	Args           map[string]string
}
