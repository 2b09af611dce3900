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

// Contains the comparison builtins. Equality works on any two values;
// ordering requires numbers. All return 1 or 0.

import (
	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
)

// Eq is the builtin that implements (== x y), structural equality.
var Eq = lispieval.Builtin{
	Name:     "==",
	MinArity: 2,
	MaxArity: 2,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		return lispi.MakeBoolean(args[0].IsEqual(args[1]))
	},
}

// Ne is the builtin that implements (!= x y).
var Ne = lispieval.Builtin{
	Name:     "!=",
	MinArity: 2,
	MaxArity: 2,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		return lispi.MakeBoolean(!args[0].IsEqual(args[1]))
	},
}

// Gt is the builtin that implements (> n m).
var Gt = ordBuiltin(">")

// Lt is the builtin that implements (< n m).
var Lt = ordBuiltin("<")

// Ge is the builtin that implements (>= n m).
var Ge = ordBuiltin(">=")

// Le is the builtin that implements (<= n m).
var Le = ordBuiltin("<=")

func ordBuiltin(op string) lispieval.Builtin {
	return lispieval.Builtin{
		Name:     op,
		MinArity: 2,
		MaxArity: 2,
		Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
			left, errObj := getNumber(op, args, 0)
			if errObj != nil {
				return errObj
			}
			right, errObj := getNumber(op, args, 1)
			if errObj != nil {
				return errObj
			}
			switch op {
			case ">":
				return lispi.MakeBoolean(left > right)
			case "<":
				return lispi.MakeBoolean(left < right)
			case ">=":
				return lispi.MakeBoolean(left >= right)
			}
			return lispi.MakeBoolean(left <= right)
		},
	}
}
