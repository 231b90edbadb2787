// Package builtins installs plox's host-backed global functions and the
// bundled List/Iterator classes into an interpreter's globals frame
// (spec §4.5). Grounded on _examples/original_source/plox/standard_library.py
// — the distillation's prose only sketches arities and "else runtime
// error"; the original pins down exactly which argument types each
// function accepts, which this package enforces.
package builtins

import (
	"math"
	"strconv"
	"time"

	"github.com/jakobknauer/plox/internal/interpreter"
)

// Install defines clock/input/str/float/floor/ceil/sin/cos/exp/log and the
// "list" class (plus its "listIterator" helper class, not separately
// exposed under any other name — matching the original source) on in's
// globals frame.
func Install(in *interpreter.Interpreter) {
	in.Globals.Define("clock", &interpreter.HostCallable{
		Name: "clock", ArityN: 0,
		Fn: func(in *interpreter.Interpreter, args []any) any {
			return float64(time.Now().UnixNano()) / 1e9
		},
	})
	in.Globals.Define("input", &interpreter.HostCallable{
		Name: "input", ArityN: 0,
		Fn: func(in *interpreter.Interpreter, args []any) any {
			return in.ReadLine()
		},
	})
	in.Globals.Define("str", &interpreter.HostCallable{
		Name: "str", ArityN: 1,
		Fn: func(in *interpreter.Interpreter, args []any) any {
			return toStr(in, requireStrOrNumber(in, args[0], "str"))
		},
	})
	in.Globals.Define("float", &interpreter.HostCallable{
		Name: "float", ArityN: 1,
		Fn: func(in *interpreter.Interpreter, args []any) any {
			return toFloat(in, requireStrOrNumber(in, args[0], "float"))
		},
	})
	in.Globals.Define("floor", mathFn1("floor", math.Floor))
	in.Globals.Define("ceil", mathFn1("ceil", math.Ceil))
	in.Globals.Define("sin", mathFn1("sin", math.Sin))
	in.Globals.Define("cos", mathFn1("cos", math.Cos))
	in.Globals.Define("exp", mathFn1("exp", math.Exp))
	in.Globals.Define("log", mathFn1("log", math.Log))

	in.Globals.Define("list", listClass())
}

func mathFn1(name string, fn func(float64) float64) *interpreter.HostCallable {
	return &interpreter.HostCallable{
		Name: name, ArityN: 1,
		Fn: func(in *interpreter.Interpreter, args []any) any {
			return fn(requireNumber(in, args[0], name))
		},
	}
}

func requireStrOrNumber(in *interpreter.Interpreter, v any, builtin string) any {
	switch v.(type) {
	case string, float64:
		return v
	default:
		in.Fail("Built-in function '" + builtin + "' expects an argument of type string or number.")
		return nil
	}
}

func requireNumber(in *interpreter.Interpreter, v any, builtin string) float64 {
	n, ok := v.(float64)
	if !ok {
		in.Fail("Built-in function '" + builtin + "' expects an argument of type number.")
	}
	return n
}

// toStr mirrors spec §4.4's print stringification so `str(n)` and
// `print n` never disagree on a number's textual form.
func toStr(in *interpreter.Interpreter, v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return interpreter.Stringify(v)
}

func toFloat(in *interpreter.Interpreter, v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			in.Fail("Built-in function 'float' could not parse '" + val + "' as a number.")
		}
		return n
	}
	return 0
}
