package builtins

import (
	"github.com/jakobknauer/plox/internal/interpreter"
	"github.com/jakobknauer/plox/internal/token"
)

// listClass backs the bracketed list-literal syntax (`[1, 2, 3]`) and the
// `list` global. Its element storage lives in Instance.Meta — a slot
// distinct from the user-visible field map — exactly as spec §4.5
// describes. iterate() is the one piece the kept original source never
// actually wires onto `list` (see SPEC_FULL.md §3); it's completed here.
func listClass() *interpreter.Class {
	return &interpreter.Class{
		Name: "list",
		Methods: map[string]interpreter.Method{
			"init":    &interpreter.HostMethod{Name: "init", ArityN: 0, Fn: listInit},
			"append":  &interpreter.HostMethod{Name: "append", ArityN: 1, Fn: listAppend},
			"at":      &interpreter.HostMethod{Name: "at", ArityN: 1, Fn: listAt},
			"size":    &interpreter.HostMethod{Name: "size", ArityN: 0, Fn: listSize},
			"iterate": &interpreter.HostMethod{Name: "iterate", ArityN: 0, Fn: listIterate},
		},
	}
}

func listInit(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	instance.Meta = []any{}
	return nil
}

func listAppend(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	items, _ := instance.Meta.([]any)
	instance.Meta = append(items, args[0])
	return nil
}

func listAt(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	items, _ := instance.Meta.([]any)
	index, ok := args[0].(float64)
	if !ok {
		in.Fail("Built-in method 'list.at' expects an index of type number.")
	}
	i := int(index)
	if i < 0 || i >= len(items) {
		in.Fail("List index out of range.")
	}
	return items[i]
}

func listSize(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	items, _ := instance.Meta.([]any)
	return float64(len(items))
}

// listIterate constructs a listIterator bound to this list — the wiring
// the original source's standard_library.py defines a separate
// `listIterator` class for but never actually attaches to `list.iterate()`.
func listIterate(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	iter := listIteratorClass().Call(in, []any{instance})
	return iter
}

func listIteratorClass() *interpreter.Class {
	return &interpreter.Class{
		Name: "listIterator",
		Methods: map[string]interpreter.Method{
			"init":     &interpreter.HostMethod{Name: "init", ArityN: 1, Fn: iteratorInit},
			"get":      &interpreter.HostMethod{Name: "get", ArityN: 0, Fn: iteratorGet},
			"move":     &interpreter.HostMethod{Name: "move", ArityN: 0, Fn: iteratorMove},
			"hasItems": &interpreter.HostMethod{Name: "hasItems", ArityN: 0, Fn: iteratorHasItems},
		},
	}
}

func fieldTok(name string) token.Token {
	return token.New(token.Identifier, name, nil, 0)
}

func iteratorInit(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	instance.Set(fieldTok("list"), args[0])
	instance.Set(fieldTok("index"), 0.0)
	return nil
}

func iteratorBacking(instance *interpreter.Instance) (*interpreter.Instance, int) {
	list := instance.Get(fieldTok("list")).(*interpreter.Instance)
	index := instance.Get(fieldTok("index")).(float64)
	return list, int(index)
}

func iteratorGet(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	list, index := iteratorBacking(instance)
	items, _ := list.Meta.([]any)
	if index < 0 || index >= len(items) {
		in.Fail("Iterator index out of range.")
	}
	return items[index]
}

func iteratorMove(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	_, index := iteratorBacking(instance)
	instance.Set(fieldTok("index"), float64(index+1))
	return nil
}

func iteratorHasItems(instance *interpreter.Instance, in *interpreter.Interpreter, args []any) any {
	list, index := iteratorBacking(instance)
	items, _ := list.Meta.([]any)
	return index < len(items)
}
