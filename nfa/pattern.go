package nfa

// Pattern is a compiled, immutable regular expression: an arena of
// states plus the entry point into it. A Pattern has no mutable state of
// its own, so a single compiled Pattern is safe to share across any
// number of concurrently-running Matchers.
type Pattern struct {
	store *Store
	start StateID
}

// States returns the number of states in the pattern's arena, including
// the reserved null state at index 0. This is exposed mainly for tests
// and diagnostics - callers sizing their own buffers for repeated
// matching should prefer NewMatcher, which already does this.
func (p *Pattern) States() int {
	return p.store.Len()
}
