package yamlstore

// yamlFile is the top-level shape of default.yml and an app-override file.
type yamlFile struct {
	Matches []yamlMatch `yaml:"matches"`
}

// yamlMatch mirrors the original implementation's loosely typed match
// entry: exactly one of Trigger/Triggers/Regex selects the cause, and
// exactly one of Replace/Image selects the effect.
type yamlMatch struct {
	Trigger   string   `yaml:"trigger"`
	Triggers  []string `yaml:"triggers"`
	Regex     string   `yaml:"regex"`
	LeftWord  bool     `yaml:"left_word"`
	RightWord bool     `yaml:"right_word"`
	Propagate bool     `yaml:"propagate_case"`

	Replace string         `yaml:"replace"`
	Format  string         `yaml:"format"`
	Image   string         `yaml:"image_path"`
	Vars    []yamlVariable `yaml:"vars"`
}

// yamlVariable mirrors one "vars" entry.
type yamlVariable struct {
	Name    string         `yaml:"name"`
	Type    string         `yaml:"type"`
	Params  map[string]any `yaml:"params"`
	Inject  bool           `yaml:"inject_vars"`
	Depends []string       `yaml:"depends_on"`
}

// appFile is the top-level shape of an app-override file: the same match
// list plus the filter that decides when it applies.
type appFile struct {
	Filter  yamlAppFilter `yaml:"filter"`
	Matches []yamlMatch   `yaml:"matches"`
}

// yamlAppFilter mirrors spec §6's per-app Config filter: regexes matched
// against the focused window's title, class, and executable name. An
// empty pattern never restricts on that field.
type yamlAppFilter struct {
	TitleRegex string `yaml:"title"`
	ClassRegex string `yaml:"class"`
	ExecRegex  string `yaml:"exec"`
}
