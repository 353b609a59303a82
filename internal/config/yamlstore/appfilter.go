package yamlstore

import (
	"fmt"
	"regexp"
)

// AppInfo is the focused-application context an AppFilter is matched
// against: the same fields builtin.Context's ActiveAppInfo summarizes.
type AppInfo struct {
	Title string
	Class string
	Exec  string
}

// AppFilter decides whether an override layer applies to the focused
// application. An unset (empty-pattern) field never restricts matching on
// it, so a filter with every field empty matches any application.
type AppFilter struct {
	title *regexp.Regexp
	class *regexp.Regexp
	exec  *regexp.Regexp
}

func compileAppFilter(f yamlAppFilter) (AppFilter, error) {
	title, err := compileOptional(f.TitleRegex)
	if err != nil {
		return AppFilter{}, fmt.Errorf("%w: title: %v", ErrInvalidAppFilter, err)
	}
	class, err := compileOptional(f.ClassRegex)
	if err != nil {
		return AppFilter{}, fmt.Errorf("%w: class: %v", ErrInvalidAppFilter, err)
	}
	exec, err := compileOptional(f.ExecRegex)
	if err != nil {
		return AppFilter{}, fmt.Errorf("%w: exec: %v", ErrInvalidAppFilter, err)
	}
	return AppFilter{title: title, class: class, exec: exec}, nil
}

func compileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}

// Matches reports whether app satisfies every configured pattern.
func (f AppFilter) Matches(app AppInfo) bool {
	if f.title != nil && !f.title.MatchString(app.Title) {
		return false
	}
	if f.class != nil && !f.class.MatchString(app.Class) {
		return false
	}
	if f.exec != nil && !f.exec.MatchString(app.Exec) {
		return false
	}
	return true
}
