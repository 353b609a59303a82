// Package regexm implements the sliding-window regex matcher: it keeps the
// last N typed characters and, on every character, tests whether any
// configured RegexCause pattern matches a suffix of that window anchored at
// the current position (espanso-match/src/regex in the original
// implementation). Named capture groups become the detected match's Args.
package regexm
