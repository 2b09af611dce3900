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

// Package lispi provides the basic values of the Lispi language.
package lispi

import (
	"fmt"
	"io"
)

// Object is the generic value all Lispi expressions work with.
type Object interface {
	fmt.Stringer

	// IsNil checks if the concrete object is nil.
	IsNil() bool

	// IsAtom returns true iff the object is an object that is not further decomposable.
	IsAtom() bool

	// IsEqual compares two objects for deep structural equality.
	IsEqual(Object) bool

	// Copy produces a value structurally equal to the receiver, sharing
	// nothing mutable with it.
	Copy() Object
}

// IsNil returns true, if the given object is the nil object.
func IsNil(obj Object) bool { return obj == nil || obj.IsNil() }

// Function tags objects the evaluator can apply to arguments. The concrete
// implementations (builtins and user-defined lambdas) live in lispieval.
type Function interface {
	Object

	// FunctionKind names the sub-kind, "builtin" or "lambda".
	FunctionKind() string
}

// Printable is an object that has a specific representation, which may differ
// from String().
type Printable interface {
	// Print emits the string representation on the given Writer.
	Print(io.Writer) (int, error)
}

// Print writes the canonical representation of an object to a io.Writer.
func Print(w io.Writer, obj Object) (int, error) {
	if pr, ok := obj.(Printable); ok {
		return pr.Print(w)
	}
	return io.WriteString(w, obj.String())
}

// WriteStrings writes the given strings to the writer, reporting the total
// number of bytes written.
func WriteStrings(w io.Writer, ss ...string) (int, error) {
	length := 0
	for _, s := range ss {
		l, err := io.WriteString(w, s)
		length += l
		if err != nil {
			return length, err
		}
	}
	return length, nil
}

// Diagnostic type names, as used in error messages.
const (
	TypeNameFunction = "Function"
	TypeNameNumber   = "Number"
	TypeNameError    = "Error"
	TypeNameOperator = "Operator"
	TypeNameString   = "String"
	TypeNameSExpr    = "S-Expression"
	TypeNameQExpr    = "Q-Expression"
	TypeNameUnknown  = "Unknown"
)

// TypeName returns the diagnostic name of the object's variant.
func TypeName(obj Object) string {
	switch obj.(type) {
	case Number:
		return TypeNameNumber
	case Error:
		return TypeNameError
	case Symbol:
		return TypeNameOperator
	case String:
		return TypeNameString
	case SExpr:
		return TypeNameSExpr
	case QExpr:
		return TypeNameQExpr
	}
	if _, isFunction := obj.(Function); isFunction {
		return TypeNameFunction
	}
	return TypeNameUnknown
}
