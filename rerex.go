// Package rerex compiles and matches a small regular expression dialect:
// literals, '.', grouping, alternation, the quantifiers '*'/'+'/'?', and
// bracketed character sets with optional negation and ranges, over
// printable 7-bit ASCII (0x20..0x7E).
//
// Unlike stdlib regexp, rerex reports only whether an entire input string
// matches a pattern - there is no substring search, no capture groups,
// and no Perl-style escapes beyond those the grammar defines. In
// exchange, compiled patterns build and run as a Thompson NFA with no
// backtracking: matching a pattern against an input of length n visits
// at most O(states x n) NFA states, regardless of the pattern.
//
// Basic usage:
//
//	re, err := rerex.Compile(`[a-z]+@[a-z]+\.[a-z]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Match("user@example.com") {
//	    fmt.Println("matched!")
//	}
package rerex

import (
	"fmt"

	"github.com/gorerex/rerex/nfa"
)

// Status is the closed set of outcomes a pattern compile can report. It
// is embedded in the SyntaxError that Compile returns; callers that only
// care which kind of failure occurred can compare it with errors.Is,
// since SyntaxError unwraps to it.
type Status = nfa.Status

// The closed set of compile outcomes. StatusSuccess is never itself
// returned as an error - a successful Compile returns a nil error.
const (
	StatusSuccess           = nfa.StatusSuccess
	StatusExpectedChar      = nfa.StatusExpectedChar
	StatusExpectedElement   = nfa.StatusExpectedElement
	StatusExpectedRBracket  = nfa.StatusExpectedRBracket
	StatusExpectedRParen    = nfa.StatusExpectedRParen
	StatusExpectedSpecial   = nfa.StatusExpectedSpecial
	StatusUnexpectedSpecial = nfa.StatusUnexpectedSpecial
	StatusUnexpectedEnd     = nfa.StatusUnexpectedEnd
	StatusUnorderedRange    = nfa.StatusUnorderedRange
	StatusNoMemory          = nfa.StatusNoMemory
)

// StatusMessage returns a short, fixed, human-readable message for s.
func StatusMessage(s Status) string {
	return nfa.StatusMessage(s)
}

// SyntaxError reports a pattern that failed to compile, with the offset
// into the pattern where the failure was detected.
type SyntaxError struct {
	Pattern string
	Offset  int
	Status  Status
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rerex: %s at offset %d in %q", e.Status, e.Offset, e.Pattern)
}

// Unwrap lets errors.Is/errors.As match against the underlying Status.
func (e *SyntaxError) Unwrap() error {
	return e.Status
}

// Pattern is a compiled, immutable regular expression.
//
// A Pattern is safe to use concurrently from multiple goroutines; it
// holds no mutable state of its own. Each goroutine that matches against
// it concurrently should use its own Matcher, obtained from NewMatcher.
type Pattern struct {
	prog *nfa.Pattern
	src  string
}

// Compile parses pattern and builds its matching automaton.
//
// Returns a *SyntaxError if pattern is not well-formed.
//
// Example:
//
//	re, err := rerex.Compile(`a(b|c)*d`)
func Compile(pattern string) (*Pattern, error) {
	prog, end, err := nfa.Compile(pattern)
	if err != nil {
		status, _ := err.(Status)
		return nil, &SyntaxError{Pattern: pattern, Offset: end, Status: status}
	}
	return &Pattern{prog: prog, src: pattern}, nil
}

// MustCompile compiles pattern and panics if it fails to compile.
//
// This is useful for patterns known to be valid at compile time, such as
// those embedded directly in source.
//
// Example:
//
//	var hexByte = rerex.MustCompile(`[0-9a-fA-F][0-9a-fA-F]`)
func MustCompile(pattern string) *Pattern {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the source text the Pattern was compiled from.
func (p *Pattern) String() string {
	return p.src
}

// States returns the number of NFA states the pattern compiled to. This
// is exposed for diagnostics and tests, not for any guarantee on its
// stability across releases.
func (p *Pattern) States() int {
	return p.prog.States()
}

// Match reports whether s, in its entirety, matches the pattern.
//
// Match compiles a throwaway Matcher for this single call; callers
// matching the same Pattern repeatedly should use NewMatcher instead to
// reuse its scratch buffers across calls.
func (p *Pattern) Match(s string) bool {
	return NewMatcher(p).Match(s)
}

// Matcher runs a compiled Pattern against input strings, reusing scratch
// buffers sized to the pattern's automaton across calls. A Matcher is
// not safe for concurrent use; construct one per goroutine with
// NewMatcher.
type Matcher struct {
	m *nfa.Matcher
}

// NewMatcher returns a Matcher for p.
func NewMatcher(p *Pattern) *Matcher {
	return &Matcher{m: nfa.NewMatcher(p.prog)}
}

// Match reports whether s, in its entirety, matches m's pattern.
func (m *Matcher) Match(s string) bool {
	return m.m.Match(s)
}
