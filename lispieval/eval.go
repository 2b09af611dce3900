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

// Package lispieval evaluates Lispi values: symbols resolve in an
// environment, S-Expressions apply their head to the evaluated rest, and
// every other value evaluates to itself.
package lispieval

import lispi "github.com/saifali96/Lispi"

// Eval evaluates an object within an environment.
func Eval(env *Env, obj lispi.Object) lispi.Object {
	switch v := obj.(type) {
	case lispi.Symbol:
		return env.Lookup(v)
	case lispi.SExpr:
		return evalSExpr(env, v)
	}
	return obj
}

// evalSExpr evaluates all children left to right, then applies the head to
// the rest. Evaluation is strict; branch selection is left to builtins that
// accept Q-Expressions.
func evalSExpr(env *Env, v lispi.SExpr) lispi.Object {
	for i, child := range v {
		v[i] = Eval(env, child)
	}

	for _, child := range v {
		if err, isError := lispi.GetError(child); isError {
			return err
		}
	}

	if len(v) == 0 {
		return v
	}
	if len(v) == 1 {
		return v[0]
	}

	fn, isCallable := GetCallable(v[0])
	if !isCallable {
		return lispi.Errorf(
			"S-Expression starts with incorrect type! Got %s, Expected %s.",
			lispi.TypeName(v[0]), lispi.TypeNameFunction)
	}
	return Apply(env, fn, v[1:])
}

// Apply calls the function with the given evaluated arguments.
func Apply(env *Env, fn Callable, args lispi.SExpr) lispi.Object {
	return fn.Call(env, args)
}
