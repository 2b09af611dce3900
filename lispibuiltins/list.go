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

// Contains all list-related builtins.

import (
	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
)

// List collects its arguments into a Q-Expression.
var List = lispieval.Builtin{
	Name:     "list",
	MinArity: 0,
	MaxArity: -1,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		return lispi.QExpr(args)
	},
}

// Head returns a Q-Expression containing only the first element.
var Head = lispieval.Builtin{
	Name:     "head",
	MinArity: 1,
	MaxArity: 1,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		q, errObj := getQExpr("head", args, 0)
		if errObj != nil {
			return errObj
		}
		if len(q) == 0 {
			return emptyError("head", 0)
		}
		return lispi.QExpr(q[:1])
	},
}

// Tail returns the Q-Expression without its first element.
var Tail = lispieval.Builtin{
	Name:     "tail",
	MinArity: 1,
	MaxArity: 1,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		q, errObj := getQExpr("tail", args, 0)
		if errObj != nil {
			return errObj
		}
		if len(q) == 0 {
			return emptyError("tail", 0)
		}
		return lispi.QExpr(q[1:])
	},
}

// EvalQ makes a Q-Expression evaluable and evaluates it.
var EvalQ = lispieval.Builtin{
	Name:     "eval",
	MinArity: 1,
	MaxArity: 1,
	Fn: func(env *lispieval.Env, args lispi.SExpr) lispi.Object {
		q, errObj := getQExpr("eval", args, 0)
		if errObj != nil {
			return errObj
		}
		return lispieval.Eval(env, lispi.SExpr(q))
	},
}

// Join concatenates Q-Expressions. Without arguments it yields the empty
// Q-Expression.
var Join = lispieval.Builtin{
	Name:     "join",
	MinArity: 0,
	MaxArity: -1,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		result := lispi.QExpr{}
		for i := range args {
			q, errObj := getQExpr("join", args, i)
			if errObj != nil {
				return errObj
			}
			result = append(result, q...)
		}
		return result
	},
}
