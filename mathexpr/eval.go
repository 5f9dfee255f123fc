// Package mathexpr compiles user-entered math expressions like "sin(x)*x"
// into callable functions using Starlark.
package mathexpr

import (
	"fmt"
	"math"

	"go.starlark.net/starlark"
)

// Func is a compiled single-variable function.
type Func struct {
	Source string
	fn     *starlark.Function
}

// Compile wraps the expression in a one-parameter Starlark function and
// resolves it against the math builtins. Compilation errors (syntax, unknown
// names) surface here; runtime errors surface per call.
func Compile(expr string) (*Func, error) {
	return compile(expr, "x")
}

// CompileParam compiles an expression of the parameter t (for parametric
// curves).
func CompileParam(expr string) (*Func, error) {
	return compile(expr, "t")
}

func compile(expr, param string) (*Func, error) {
	if expr == "" {
		return nil, fmt.Errorf("mathexpr: empty expression")
	}
	script := fmt.Sprintf("def f(%s):\n    return %s\n", param, expr)
	thread := &starlark.Thread{Name: "mathexpr"}
	globals, err := starlark.ExecFile(thread, expr, script, builtins())
	if err != nil {
		return nil, fmt.Errorf("mathexpr: %w", err)
	}
	fn, ok := globals["f"].(*starlark.Function)
	if !ok {
		return nil, fmt.Errorf("mathexpr: %q did not produce a function", expr)
	}
	return &Func{Source: expr, fn: fn}, nil
}

// Eval calls the compiled function. Runtime failures (log of a negative
// number, division by zero) return NaN rather than an error so callers can
// treat bad samples as gaps.
func (f *Func) Eval(x float64) float64 {
	thread := &starlark.Thread{Name: "mathexpr"}
	res, err := starlark.Call(thread, f.fn, starlark.Tuple{starlark.Float(x)}, nil)
	if err != nil {
		return math.NaN()
	}
	switch v := res.(type) {
	case starlark.Float:
		return float64(v)
	case starlark.Int:
		i, _ := v.Int64()
		return float64(i)
	}
	return math.NaN()
}

func builtins() starlark.StringDict {
	dict := starlark.StringDict{
		"pi": starlark.Float(math.Pi),
		"e":  starlark.Float(math.E),
	}
	unary := map[string]func(float64) float64{
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"exp":   math.Exp,
		"log":   math.Log,
		"sqrt":  math.Sqrt,
		"abs":   math.Abs,
		"floor": math.Floor,
		"ceil":  math.Ceil,
	}
	for name, fn := range unary {
		dict[name] = newUnary(name, fn)
	}
	dict["pow"] = starlark.NewBuiltin("pow", func(t *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y float64
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
			return nil, err
		}
		return starlark.Float(math.Pow(x, y)), nil
	})
	return dict
}

func newUnary(name string, fn func(float64) float64) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(t *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x float64
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
			return nil, err
		}
		return starlark.Float(fn(x)), nil
	})
}
