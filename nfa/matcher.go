package nfa

// Matcher runs a compiled Pattern against input strings. A Matcher holds
// scratch buffers sized to its Pattern's arena so that repeated calls to
// Match reuse the same memory instead of allocating per call; it is not
// safe for concurrent use, but building another for the same Pattern
// with NewMatcher is cheap.
//
// Matching proceeds position by position over the input, tracking the
// set of NFA states reachable after consuming each prefix - the classic
// Thompson simulation, run breadth-first so no input is ever backtracked
// over. Two alternating frontiers (cur/next) hold that set; a monotonic
// iteration stamp per state takes the place of clearing the frontier's
// visited-set between positions, so closure work is bounded to once per
// state per position regardless of how many epsilon paths reach it.
type Matcher struct {
	pattern *Pattern
	visited []uint32
	iter    uint32
	lists   [2][]StateID
}

// NewMatcher returns a Matcher for p. The returned Matcher's scratch
// buffers are sized for p and must not be used with any other Pattern.
func NewMatcher(p *Pattern) *Matcher {
	n := p.store.Len()
	return &Matcher{
		pattern: p,
		visited: make([]uint32, n),
		lists: [2][]StateID{
			make([]StateID, 0, n),
			make([]StateID, 0, n),
		},
	}
}

// addThread adds id, and every state reachable from it by epsilon
// transitions, to list. Only Range and Match states - the ones with no
// further epsilon successors - are ever appended; Split states are
// followed but never themselves stored, since they carry no work of
// their own on the next input byte. A state already stamped for the
// current iteration is skipped, so a diamond of Splits converging on the
// same Range is explored once no matter how many paths lead to it.
func (m *Matcher) addThread(list []StateID, id StateID) []StateID {
	if id == NullState || m.visited[id] == m.iter {
		return list
	}
	m.visited[id] = m.iter

	st := m.pattern.store.State(id)
	if st.kind == KindSplit {
		list = m.addThread(list, st.next1)
		list = m.addThread(list, st.next2)
		return list
	}
	return append(list, id)
}

// Match reports whether s, in its entirety, matches m's pattern. This is
// full-string matching, not search: s matches iff the whole string is
// consumed and a Match state is live afterward, analogous to anchoring
// both ^ and $ around the pattern.
func (m *Matcher) Match(s string) bool {
	m.iter++
	cur := m.addThread(m.lists[0][:0], m.pattern.start)
	next := m.lists[1][:0]

	for i := 0; i < len(s); i++ {
		c := s[i]
		if len(cur) == 0 {
			return false
		}

		m.iter++
		next = next[:0]
		for _, id := range cur {
			st := m.pattern.store.State(id)
			if st.kind == KindRange && c >= st.lo && c <= st.hi {
				next = m.addThread(next, st.next1)
			}
		}
		cur, next = next, cur
	}

	for _, id := range cur {
		if m.pattern.store.State(id).IsMatch() {
			return true
		}
	}
	return false
}
