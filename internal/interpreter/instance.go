package interpreter

import "github.com/jakobknauer/plox/internal/token"

// Instance is a runtime object created by calling a Class. It owns a
// mutable field map and, for host-backed classes (internal/builtins),
// a separate metafield slot used for storage the interpreter never
// exposes as a user-visible field (spec §4.5's "List" backing storage).
type Instance struct {
	Class  *Class
	fields map[string]any

	// Meta holds host-defined backing state (e.g. a List's element slice).
	// It is deliberately not part of fields: user code can never read or
	// overwrite it via Get/Set.
	Meta any
}

// NewInstance allocates a zero-valued instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: make(map[string]any)}
}

// Get resolves a property: instance fields first, then methods walking the
// class chain, bound to this instance. Fails with an UndefinedProperty
// runtime error if neither is found (spec §4.4's "Property access").
func (i *Instance) Get(name token.Token) any {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v
	}
	if method := i.Class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i)
	}
	panic(&runtimeError{tok: name, message: "Undefined property '" + name.Lexeme + "'."})
}

// Set assigns a field unconditionally, creating it if absent.
func (i *Instance) Set(name token.Token, value any) {
	i.fields[name.Lexeme] = value
}
