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

package lispibuiltins

// Contains the binding builtins and the lambda constructor.

import (
	"t73f.de/r/zero/set"

	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
)

// Def binds symbols in the root environment.
var Def = varBuiltin("def", true)

// Put binds symbols in the current environment.
var Put = varBuiltin("=", false)

// varBuiltin implements (def {s...} v...) and (= {s...} v...): the first
// argument lists the symbols, the remaining arguments are their values.
func varBuiltin(name string, global bool) lispieval.Builtin {
	return lispieval.Builtin{
		Name:     name,
		MinArity: 1,
		MaxArity: -1,
		Fn: func(env *lispieval.Env, args lispi.SExpr) lispi.Object {
			targets, errObj := getQExpr(name, args, 0)
			if errObj != nil {
				return errObj
			}

			syms := make([]lispi.Symbol, len(targets))
			for i, target := range targets {
				sym, isSymbol := lispi.GetSymbol(target)
				if !isSymbol {
					return lispi.Errorf(
						"Function '%s' cannot define non-operator! Got %s, Expected %s",
						name, lispi.TypeName(target), lispi.TypeNameOperator)
				}
				syms[i] = sym
			}

			if len(syms) != len(args)-1 {
				return lispi.Errorf(
					"Function '%s' passed too many arguments for operators! Got %d, Expected %d.",
					name, len(syms), len(args)-1)
			}

			for i, sym := range syms {
				if global {
					env.Def(sym, args[i+1])
				} else {
					env.Put(sym, args[i+1])
				}
			}
			return lispi.SExpr{}
		},
	}
}

// LambdaB is the builtin that implements (\ {formals} {body}).
var LambdaB = lispieval.Builtin{
	Name:     "\\",
	MinArity: 2,
	MaxArity: 2,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		formals, errObj := getQExpr("\\", args, 0)
		if errObj != nil {
			return errObj
		}
		body, errObj := getQExpr("\\", args, 1)
		if errObj != nil {
			return errObj
		}

		syms := make([]lispi.Symbol, len(formals))
		for i, formal := range formals {
			sym, isSymbol := lispi.GetSymbol(formal)
			if !isSymbol {
				return lispi.Errorf(
					"Cannot define non-operator! Got %s, Expected %s.",
					lispi.TypeName(formal), lispi.TypeNameOperator)
			}
			syms[i] = sym
		}
		if set.New(syms...).Length() != len(syms) {
			return lispi.Errorf("Function '\\' passed duplicate operators in formals.")
		}

		return lispieval.MakeLambda(formals, body)
	},
}
