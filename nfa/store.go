package nfa

import "github.com/gorerex/rerex/internal/conv"

// Store is an append-only arena of NFA states, indexed by StateID. States
// are never removed or moved once added, so a StateID stays valid for the
// lifetime of the Store it came from - this is what lets the NFA graph be
// cyclic (required for '*' and '+') while ownership stays a flat,
// non-cyclic arena.
//
// Index 0 is reserved: newStore seeds it with an unreachable placeholder
// so NullState (the zero StateID) can mean "no successor" everywhere
// without colliding with a real state.
type Store struct {
	states []State
}

// newStore returns a Store with its reserved null state already in place.
func newStore() *Store {
	s := &Store{states: make([]State, 0, 16)}
	s.states = append(s.states, State{kind: KindSplit})
	return s
}

// Len returns the number of states in the arena, including the reserved
// null state at index 0.
func (s *Store) Len() int {
	return len(s.states)
}

// State returns the state at id. The caller must only pass IDs returned
// by this Store's own constructors.
func (s *Store) State(id StateID) State {
	return s.states[id]
}

func (s *Store) addMatch() StateID {
	id := StateID(conv.IntToUint32(len(s.states)))
	s.states = append(s.states, State{kind: KindMatch})
	return id
}

func (s *Store) addSplit(a, b StateID) StateID {
	id := StateID(conv.IntToUint32(len(s.states)))
	s.states = append(s.states, State{kind: KindSplit, next1: a, next2: b})
	return id
}

func (s *Store) addRange(lo, hi byte, next StateID) StateID {
	id := StateID(conv.IntToUint32(len(s.states)))
	s.states = append(s.states, State{kind: KindRange, lo: lo, hi: hi, next1: next})
	return id
}

// fragment is a transient NFA piece produced while parsing: start is
// where control enters it, end is a pre-allocated state (always a match
// state at the moment a fragment is first built) that the enclosing
// combinator is free to rewrite in place. This is how Thompson
// construction patches out-arcs here without a separate patch list: every
// fragment always exposes exactly one patchable slot.
type fragment struct {
	start, end StateID
}

// isTrivial reports whether f's start is a range state whose sole
// successor is f's own end - i.e. f is just one labeled arc with nothing
// else attached yet. Trivial fragments can be inlined by concat and
// alternate instead of being wired through an extra split.
func (s *Store) isTrivial(f fragment) bool {
	st := s.states[f.start]
	return st.kind == KindRange && st.next1 == f.end
}

// star implements Kleene closure: zero or more repetitions of a.
func (s *Store) star(a fragment) fragment {
	end := s.addMatch()
	start := s.addSplit(a.start, end)
	s.states[a.end] = State{kind: KindSplit, next1: a.start, next2: end}
	return fragment{start, end}
}

// question implements zero-or-one of a.
func (s *Store) question(a fragment) fragment {
	start := s.addSplit(a.start, a.end)
	return fragment{start, a.end}
}

// plus implements one-or-more of a.
func (s *Store) plus(a fragment) fragment {
	end := s.addMatch()
	s.states[a.end] = State{kind: KindSplit, next1: a.start, next2: end}
	return fragment{a.start, end}
}

// concat implements sequencing: a followed by b.
func (s *Store) concat(a, b fragment) fragment {
	if s.isTrivial(a) {
		// a is just one labeled arc; point it straight at b and drop a's end.
		s.states[a.start].next1 = b.start
	} else {
		s.states[a.end] = State{kind: KindSplit, next1: b.start}
	}
	return fragment{a.start, b.end}
}

// alternate implements a|b.
func (s *Store) alternate(a, b fragment) fragment {
	split := s.addSplit(a.start, b.start)

	if s.isTrivial(a) {
		s.states[a.start].next1 = b.end
		return fragment{split, b.end}
	}
	if s.isTrivial(b) {
		s.states[b.start].next1 = a.end
		return fragment{split, a.end}
	}

	end := s.addMatch()
	s.states[a.end] = State{kind: KindSplit, next1: end}
	s.states[b.end] = State{kind: KindSplit, next1: end}
	return fragment{split, end}
}
