package interpreter

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Environment is a single lexical scope: a name-to-value map linked to its
// enclosing scope. Closures capture a specific *Environment pointer, so an
// environment can outlive the block that created it.
//
// Bindings are kept in a dolthub/swiss map rather than a built-in Go map --
// the same open-addressing hash map the teacher uses for its own runtime
// Map value (lang/machine/map.go) -- since an Environment is exactly the
// kind of small, short-lived, lookup-heavy table that library targets.
type Environment struct {
	values    *swiss.Map[string, Value]
	enclosing *Environment
}

// NewEnvironment returns a top-level environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8)}
}

// NewChildEnvironment returns an environment nested inside enclosing.
func NewChildEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8), enclosing: enclosing}
}

// Define introduces (or overwrites) a binding in this scope. Redefining an
// existing name -- including in the global scope -- is allowed.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get looks up name starting at this scope and walking outward.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values.Get(name); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("undefined variable '%s'", name)
}

// Assign updates an existing binding, walking outward; it is an error to
// assign to a name that was never declared.
func (e *Environment) Assign(name string, value Value) error {
	if _, ok := e.values.Get(name); ok {
		e.values.Put(name, value)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return fmt.Errorf("undefined variable '%s'", name)
}

// ancestor walks distance scopes outward from e.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt looks up name exactly distance scopes out -- the fast path used
// once the resolver has determined a variable's lexical depth.
func (e *Environment) GetAt(distance int, name string) (Value, error) {
	env := e.ancestor(distance)
	if v, ok := env.values.Get(name); ok {
		return v, nil
	}
	return nil, fmt.Errorf("undefined variable '%s'", name)
}

// AssignAt assigns name exactly distance scopes out.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values.Put(name, value)
}
