package interpreter

import (
	"fmt"

	"github.com/jakobknauer/plox/internal/ast"
)

// Callable is any value that can appear as the callee of a Call expression
// (spec §3's "Callable" data-model entry).
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []any) any
}

// Method is a class member that must be bound to a receiving instance
// before it can be called — either a user-declared Function (Bind extends
// its closure with a `this` frame) or a HostMethod (Bind closes over the
// instance directly, spec §4.5's host-backed List/Iterator methods).
type Method interface {
	Arity() int
	Bind(instance *Instance) Callable
}

// Function is a user-defined function or method: a Function declaration
// plus the closure environment it captured, and whether it is a class
// initializer (spec's "User function" / "Bound method" variants — a bound
// method is simply a Function whose closure has been extended with a
// frame defining `this`, via Bind).
type Function struct {
	decl          *ast.Function
	closure       *Environment
	isInitializer bool
}

func (f *Function) Arity() int { return len(f.decl.Params) }

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme) }

// Call creates a new environment enclosing the closure, binds parameters
// positionally, and executes the body. Early return unwinds via a
// returnSignal caught here, at the call boundary. Falling off the end
// returns nil, unless this is an initializer, in which case `this` (bound
// in the closure) is always returned regardless of what the body did
// (spec §4.4).
func (f *Function) Call(in *Interpreter, args []any) (result any) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			result = sig.value
		}
		if f.isInitializer {
			result = f.closure.GetAt(0, "this")
		}
	}()

	in.executeBlock(f.decl.Body, env)
	return nil
}

// Bind returns a copy of f whose closure has been extended with a frame
// defining `this = instance` — spec's "Bound method" Callable variant.
func (f *Function) Bind(instance *Instance) Callable {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

// Class is callable as a constructor and additionally supports method
// lookup through its superclass chain. Methods may be user-declared
// (Function) or host-backed (HostMethod), uniformly through the
// Method interface.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]Method
}

func (c *Class) String() string { return c.Name }

// FindMethod walks the superclass chain looking for name.
func (c *Class) FindMethod(name string) Method {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of `init` if present, else 0.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call allocates a new Instance and, if the class (or an ancestor) defines
// `init`, binds and calls it before returning the instance.
func (c *Class) Call(in *Interpreter, args []any) any {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		init.Bind(instance).Call(in, args)
	}
	return instance
}

// HostCallable wraps a Go function of fixed arity as a Callable — the
// mechanism backing built-ins (internal/builtins) and the host-backed
// List/Iterator classes.
type HostCallable struct {
	Name   string
	ArityN int
	Fn     func(in *Interpreter, args []any) any
}

func (h *HostCallable) Arity() int { return h.ArityN }

func (h *HostCallable) Call(in *Interpreter, args []any) any { return h.Fn(in, args) }

func (h *HostCallable) String() string { return fmt.Sprintf("<native fn %s>", h.Name) }

// HostMethod is a Method implemented in Go rather than Lox source — the
// mechanism backing the host-backed List/Iterator classes (spec §4.5). Fn
// receives the bound instance directly, so it can read/write Instance.Meta.
type HostMethod struct {
	Name   string
	ArityN int
	Fn     func(instance *Instance, in *Interpreter, args []any) any
}

func (h *HostMethod) Arity() int { return h.ArityN }

// Bind closes Fn over instance, producing an ordinary Callable.
func (h *HostMethod) Bind(instance *Instance) Callable {
	return &HostCallable{
		Name:   h.Name,
		ArityN: h.ArityN,
		Fn: func(in *Interpreter, args []any) any {
			return h.Fn(instance, in, args)
		},
	}
}

// returnSignal is the non-local-exit mechanism for `return` (spec §4.4,
// §7: "not an error; a dedicated unwinding mechanism caught exactly at the
// enclosing call boundary").
type returnSignal struct {
	value any
}
