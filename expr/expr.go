// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package expr evaluates starlark expressions over a register's symbols.
//
// Every valid flag of the register is predeclared as its bit mask, along
// with ADDRESS, ALL_BITS, DEFAULT_BITS, WIDTH and VALUE (the register's
// current value). For example "VALUE | CE_PLL" sets the CE_PLL bit.
package expr

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/exp/constraints"

	"github.com/ezrec/regtype/register"
	"github.com/ezrec/regtype/translate"
)

var f = translate.From

// ErrExpression is returned when an expression has no integer value that
// fits in a register.
var ErrExpression = errors.New(f("expression is not a register value"))

// ErrEval reports a failed expression.
type ErrEval struct {
	Expr string
	Err  error
}

func (err *ErrEval) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrEval) Unwrap() error {
	return err.Err
}

// Predeclared returns the symbols visible to an expression on reg.
func Predeclared[B any, T register.Width, A constraints.Integer](reg *register.Register[B, T, A]) (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for name, value := range reg.Schema().Defines() {
		pred[name] = starlark.MakeUint64(value)
	}
	if address := reg.Address(); address < 0 {
		pred["ADDRESS"] = starlark.MakeInt64(int64(address))
	}
	pred["VALUE"] = starlark.MakeUint64(uint64(reg.Value()))
	return
}

// Eval evaluates expr against reg. The register is not modified.
func Eval[B any, T register.Width, A constraints.Integer](reg *register.Register[B, T, A], expr string) (value T, err error) {
	thread := starlark.Thread{Name: reg.Schema().Name()}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, Predeclared(reg))
	if err != nil {
		err = &ErrEval{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrEval{Expr: expr, Err: ErrExpression}
		return
	}

	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 != uint64(T(st_uint64)) {
		err = &ErrEval{Expr: expr, Err: ErrExpression}
		return
	}

	value = T(st_uint64)
	return
}

// Apply evaluates expr against reg, and stores the result. Bits outside of
// the register's valid mask are dropped, as with SetValue.
func Apply[B any, T register.Width, A constraints.Integer](reg *register.Register[B, T, A], expr string) (err error) {
	value, err := Eval(reg, expr)
	if err != nil {
		return
	}

	reg.SetValue(value)

	return
}
