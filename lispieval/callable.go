//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Saif Ali
//
// This file is part of Lispi.
//
// Lispi is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present Saif Ali
//-----------------------------------------------------------------------------

package lispieval

import (
	"io"
	"strings"

	lispi "github.com/saifali96/Lispi"
)

// Callable is a value that can be applied to evaluated arguments.
type Callable interface {
	lispi.Function

	// Call applies the value to the arguments. The children of args have
	// already been evaluated; the callee consumes them.
	Call(env *Env, args lispi.SExpr) lispi.Object
}

// GetCallable returns the object as a Callable, if possible.
func GetCallable(obj lispi.Object) (Callable, bool) {
	fn, ok := obj.(Callable)
	return fn, ok
}

// --- Builtin

// BuiltinFn is the signature of a host-implemented operation. A failed
// operation reports by returning an error value.
type BuiltinFn func(env *Env, args lispi.SExpr) lispi.Object

// Builtin is the type for predefined host functions.
type Builtin struct {
	// The canonical Name of the builtin.
	Name string

	// Minimum and maximum arity. If MaxArity < 0, maximum arity is unlimited.
	MinArity, MaxArity int

	// The actual builtin function.
	Fn BuiltinFn
}

// IsNil checks if the concrete object is nil.
func (b *Builtin) IsNil() bool { return b == nil }

// IsAtom returns true iff the object is an object that is not further decomposable.
func (b *Builtin) IsAtom() bool { return b == nil }

// IsEqual compares two builtins; they are equal iff they refer to the same
// host callable.
func (b *Builtin) IsEqual(other lispi.Object) bool {
	if b == other {
		return true
	}
	if b == nil {
		return lispi.IsNil(other)
	}
	otherB, ok := other.(*Builtin)
	return ok && b == otherB
}

// Copy returns the builtin itself; builtins are immutable and keep their
// identity across copies.
func (b *Builtin) Copy() lispi.Object { return b }

// String returns the opaque printable form.
func (b *Builtin) String() string { return "<builtin>" }

// Print writes the opaque printable form to the given Writer.
func (b *Builtin) Print(w io.Writer) (int, error) { return io.WriteString(w, b.String()) }

// FunctionKind returns the function sub-kind.
func (*Builtin) FunctionKind() string { return "builtin" }

// Call checks the arity and invokes the host function.
func (b *Builtin) Call(env *Env, args lispi.SExpr) lispi.Object {
	nargs := len(args)
	if b.MinArity == b.MaxArity {
		if nargs != b.MinArity {
			return arityError(b.Name, nargs, b.MinArity)
		}
	} else if nargs < b.MinArity {
		return arityError(b.Name, nargs, b.MinArity)
	} else if b.MaxArity >= 0 && nargs > b.MaxArity {
		return arityError(b.Name, nargs, b.MaxArity)
	}
	return b.Fn(env, args)
}

func arityError(name string, got, expected int) lispi.Error {
	return lispi.Errorf(
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		name, got, expected)
}

// --- Lambda

// Lambda is a user-defined function: formals and body, plus the captured
// environment holding already-bound arguments.
type Lambda struct {
	Formals lispi.QExpr
	Body    lispi.QExpr
	Env     *Env
}

// MakeLambda creates a Lambda with a freshly allocated captured environment.
func MakeLambda(formals, body lispi.QExpr) *Lambda {
	return &Lambda{Formals: formals, Body: body, Env: MakeEnv()}
}

// IsNil checks if the concrete object is nil.
func (f *Lambda) IsNil() bool { return f == nil }

// IsAtom returns true iff the object is an object that is not further decomposable.
func (f *Lambda) IsAtom() bool { return f == nil }

// IsEqual compares two lambdas by their formals and bodies. The captured
// environment is not compared.
func (f *Lambda) IsEqual(other lispi.Object) bool {
	if f == other {
		return true
	}
	if f == nil {
		return lispi.IsNil(other)
	}
	otherF, ok := other.(*Lambda)
	return ok && f.Formals.IsEqual(otherF.Formals) && f.Body.IsEqual(otherF.Body)
}

// Copy deep-copies the lambda: formals, body, and the captured environment.
// The environment's parent link is copied by reference.
func (f *Lambda) Copy() lispi.Object {
	return &Lambda{
		Formals: f.Formals.Copy().(lispi.QExpr),
		Body:    f.Body.Copy().(lispi.QExpr),
		Env:     f.Env.Copy(),
	}
}

// String returns the printable form.
func (f *Lambda) String() string {
	var sb strings.Builder
	if _, err := f.Print(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}

// Print writes the lambda in constructor form to the given Writer.
func (f *Lambda) Print(w io.Writer) (int, error) {
	length, err := io.WriteString(w, "(\\ ")
	if err != nil {
		return length, err
	}
	var l int
	l, err = lispi.Print(w, f.Formals)
	length += l
	if err != nil {
		return length, err
	}
	l, err = io.WriteString(w, " ")
	length += l
	if err != nil {
		return length, err
	}
	l, err = lispi.Print(w, f.Body)
	length += l
	if err != nil {
		return length, err
	}
	l, err = io.WriteString(w, ")")
	return length + l, err
}

// FunctionKind returns the function sub-kind.
func (*Lambda) FunctionKind() string { return "lambda" }

// Call binds the arguments to the lambda's formals inside the captured
// environment. A fully applied lambda evaluates its body with the caller's
// environment as parent; a partially applied one returns a copy of itself
// with the remaining formals, as a new first-class value.
func (f *Lambda) Call(env *Env, args lispi.SExpr) lispi.Object {
	given, total := len(args), len(f.Formals)

	for len(args) > 0 {
		if len(f.Formals) == 0 {
			return lispi.Errorf(
				"Function passed too many arguments! Got %d, Expected %d.",
				given, total)
		}

		formal := f.Formals[0]
		f.Formals = f.Formals[1:]

		if formal.IsEqual(lispi.SymbolAmpersand) {
			if len(f.Formals) != 1 {
				return lispi.MakeError(
					"Function formal invalid! Operator '&' not followed by a single operator.")
			}
			collector := f.Formals[0].(lispi.Symbol)
			f.Formals = f.Formals[:0]
			f.Env.Put(collector, lispi.QExpr(args))
			args = nil
			break
		}

		f.Env.Put(formal.(lispi.Symbol), args[0])
		args = args[1:]
	}

	// No variadic arguments were supplied: bind the collector to {}.
	if len(f.Formals) > 0 && f.Formals[0].IsEqual(lispi.SymbolAmpersand) {
		if len(f.Formals) != 2 {
			return lispi.MakeError(
				"Function format invalid! Symbol '&' no followed by a single symbol.")
		}
		collector := f.Formals[1].(lispi.Symbol)
		f.Formals = f.Formals[:0]
		f.Env.Put(collector, lispi.QExpr{})
	}

	if len(f.Formals) == 0 {
		f.Env.SetParent(env)
		body := f.Body.Copy().(lispi.QExpr)
		return Eval(f.Env, lispi.SExpr(body))
	}
	return f.Copy()
}
