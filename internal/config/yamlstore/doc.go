// Package yamlstore loads a match store from YAML files: a base
// default.yml plus, optionally, every *.yml file in an override directory,
// each an app-specific layer whose matches are appended and whose app
// filter decides when it applies.
//
// This is deliberately thin. Full multi-file inheritance, per-key
// precedence rules, and legacy-config migration are out of scope (the
// core only needs something that produces a populated MatchStore); see
// the teacher's internal/config/layer and internal/config/loader
// packages for what a complete version of this would look like.
package yamlstore
