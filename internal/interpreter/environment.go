package interpreter

import (
	"fmt"

	"github.com/jakobknauer/plox/internal/token"
)

// Environment is a single frame in the chain described in spec §4.3: a
// map from names to values, optionally chained to an enclosing frame.
// Grounded on the teacher's environment.go, generalized with Ancestor/
// GetAt/AssignAt for the resolver-precomputed scope distances and with
// Get/Assign failing via a *runtimeError instead of os.Exit.
type Environment struct {
	parent *Environment
	values map[string]any
}

// NewEnvironment creates a frame enclosed by parent (nil for the globals
// frame).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, values: make(map[string]any)}
}

// Define inserts name unconditionally in this frame, shadowing any
// outer binding. Redefinition in the same frame overwrites.
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get looks up name starting in this frame and walking outward, failing
// with an UndefinedVariable runtime error referring to tok.
func (e *Environment) Get(tok token.Token) any {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[tok.Lexeme]; ok {
			return v
		}
	}
	panic(&runtimeError{tok: tok, message: fmt.Sprintf("Undefined variable '%s'.", tok.Lexeme)})
}

// Assign mutates name in the first (innermost) frame where it already
// exists, failing with an UndefinedVariable runtime error otherwise.
func (e *Environment) Assign(tok token.Token, value any) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[tok.Lexeme]; ok {
			env.values[tok.Lexeme] = value
			return
		}
	}
	panic(&runtimeError{tok: tok, message: fmt.Sprintf("Undefined variable '%s'.", tok.Lexeme)})
}

// Ancestor returns the frame reached by following exactly distance
// enclosing links. Behavior is undefined (and will panic) for an
// out-of-range distance — the resolver guarantees correctness (spec §4.3).
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// GetAt reads name directly out of Ancestor(distance), returning nil if
// absent. The interpreter uses it for every resolved local read, including
// the compiler-injected names "this"/"super"; the resolver guarantees the
// name is present at that exact frame.
func (e *Environment) GetAt(distance int, name string) any {
	return e.Ancestor(distance).values[name]
}

// AssignAt assigns name directly in Ancestor(distance).
func (e *Environment) AssignAt(distance int, tok token.Token, value any) {
	e.Ancestor(distance).values[tok.Lexeme] = value
}
