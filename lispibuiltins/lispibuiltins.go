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

// Package lispibuiltins contains the host-implemented operations of the
// language and helpers to check their arguments.
package lispibuiltins

import (
	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
)

// typeError builds the canonical wrong-variant diagnostic.
func typeError(fn string, index int, got lispi.Object, expected string) lispi.Error {
	return lispi.Errorf(
		"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
		fn, index, lispi.TypeName(got), expected)
}

// emptyError builds the canonical empty-list diagnostic.
func emptyError(fn string, index int) lispi.Error {
	return lispi.Errorf("Function '%s' passed {} for argument %d.", fn, index)
}

// getNumber returns argument index as a number, or the diagnostic to report.
func getNumber(fn string, args lispi.SExpr, index int) (lispi.Number, lispi.Object) {
	if n, ok := lispi.GetNumber(args[index]); ok {
		return n, nil
	}
	return 0, typeError(fn, index, args[index], lispi.TypeNameNumber)
}

// getQExpr returns argument index as a Q-Expression, or the diagnostic to
// report.
func getQExpr(fn string, args lispi.SExpr, index int) (lispi.QExpr, lispi.Object) {
	if q, ok := lispi.GetQExpr(args[index]); ok {
		return q, nil
	}
	return nil, typeError(fn, index, args[index], lispi.TypeNameQExpr)
}

// getString returns argument index as a string, or the diagnostic to report.
func getString(fn string, args lispi.SExpr, index int) (lispi.String, lispi.Object) {
	if s, ok := lispi.GetString(args[index]); ok {
		return s, nil
	}
	return lispi.String{}, typeError(fn, index, args[index], lispi.TypeNameString)
}

// BindAll binds the complete builtin set to the given environment, usually
// the root.
func BindAll(env *lispieval.Env) {
	for _, b := range []*lispieval.Builtin{
		// List functions
		&List, &Head, &Tail, &EvalQ, &Join,

		// Mathematical functions
		&Add, &Sub, &Mul, &Div, &Mod, &Pow, &Min, &Max,

		// Variable functions
		&LambdaB, &Def, &Put,

		// Comparison functions
		&If, &Eq, &Ne, &Gt, &Lt, &Ge, &Le,

		// Logical operators
		&And, &Or, &Not,

		// String functions
		&Load, &ErrorB, &PrintB,
	} {
		env.Put(lispi.MakeSymbol(b.Name), b)
	}
}
