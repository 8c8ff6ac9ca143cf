package lang

import "sort"

// Scope is a chained name-to-value environment. Lookup walks outward
// through parents; assignment always writes into the innermost scope, so
// shadowing is total within a call and parent scopes are never mutated.
type Scope struct {
	store  map[string]Value
	parent *Scope
}

// NewScope creates a fresh root scope.
func NewScope() *Scope {
	return &Scope{store: make(map[string]Value)}
}

// Child creates a scope whose parent is s.
//
// Copying the caller's bindings into every call scope would behave the
// same, since assignment never traverses upward and evaluation is
// single-threaded, but costs O(n) per call. Sharing the parent by
// reference is observably identical.
func (s *Scope) Child() *Scope {
	return &Scope{store: make(map[string]Value), parent: s}
}

// Get resolves a name, walking outward through parent scopes. The boolean
// reports whether the name was found.
func (s *Scope) Get(name string) (Value, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if v, ok := scope.store[name]; ok {
			return v, true
		}
	}

	return Value{}, false
}

// Set binds a value in this scope only. An existing binding in a parent
// scope is shadowed, not rebound.
func (s *Scope) Set(name string, v Value) {
	s.store[name] = v
}

// Len returns the number of names resolvable from this scope.
func (s *Scope) Len() int {
	return len(s.names())
}

// Names returns all names resolvable from this scope, sorted. Shadowed
// names appear once.
func (s *Scope) Names() []string {
	names := s.names()

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}

	sort.Strings(sorted)

	return sorted
}

func (s *Scope) names() map[string]struct{} {
	names := make(map[string]struct{})

	for scope := s; scope != nil; scope = scope.parent {
		for name := range scope.store {
			names[name] = struct{}{}
		}
	}

	return names
}
