// Package expr compiles one-variable JavaScript expressions into Go
// integrands, so the command line can integrate functions such as
// "Math.sqrt(1 - x*x)".
package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dop251/goja"
)

var (
	// ErrEmptyExpression is returned for a blank source string.
	ErrEmptyExpression = errors.New("expr: empty expression")

	// ErrCompile wraps syntax errors and sources that do not form a function.
	ErrCompile = errors.New("expr: compile failed")
)

// Func is a compiled expression in the variable x.
//
// A Func owns a goja runtime and is not safe for concurrent use.
type Func struct {
	src string
	vm  *goja.Runtime
	fn  goja.Callable
	err error
}

// Compile builds a Func from a JavaScript expression in x. All of the
// JavaScript Math object is available (Math.sin, Math.PI, ...).
func Compile(src string) (*Func, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmptyExpression
	}

	vm := goja.New()
	// Keep the sandbox to pure arithmetic.
	for _, name := range []string{"require", "process", "module", "exports"} {
		vm.Set(name, goja.Undefined())
	}

	val, err := vm.RunString("(function (x) { return (" + src + "); })")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, src, err)
	}
	fn, ok := goja.AssertFunction(val)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not callable", ErrCompile, src)
	}

	return &Func{src: src, vm: vm, fn: fn}, nil
}

// Eval evaluates the expression at x. A runtime exception yields NaN and is
// kept for Err; evaluation continues so that an integrand stays total.
func (f *Func) Eval(x float64) float64 {
	res, err := f.fn(goja.Undefined(), f.vm.ToValue(x))
	if err != nil {
		if f.err == nil {
			f.err = fmt.Errorf("expr: %q at x=%g: %w", f.src, x, err)
		}
		return math.NaN()
	}
	return res.ToFloat()
}

// Err returns the first evaluation error, if any.
func (f *Func) Err() error {
	return f.err
}

// String returns the source expression.
func (f *Func) String() string {
	return f.src
}
