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

// Contains the logical builtins. A number is truthy iff it is nonzero; the
// results are 1 or 0. Arguments are evaluated before dispatch, so there is
// no short-circuiting.

import (
	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
)

// And is the builtin that implements (and n m).
var And = lispieval.Builtin{
	Name:     "and",
	MinArity: 2,
	MaxArity: 2,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		left, errObj := getNumber("and", args, 0)
		if errObj != nil {
			return errObj
		}
		right, errObj := getNumber("and", args, 1)
		if errObj != nil {
			return errObj
		}
		return lispi.MakeBoolean(left.IsTrue() && right.IsTrue())
	},
}

// Or is the builtin that implements (or n m).
var Or = lispieval.Builtin{
	Name:     "or",
	MinArity: 2,
	MaxArity: 2,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		left, errObj := getNumber("or", args, 0)
		if errObj != nil {
			return errObj
		}
		right, errObj := getNumber("or", args, 1)
		if errObj != nil {
			return errObj
		}
		return lispi.MakeBoolean(left.IsTrue() || right.IsTrue())
	},
}

// Not is the builtin that implements (not n).
var Not = lispieval.Builtin{
	Name:     "not",
	MinArity: 1,
	MaxArity: 1,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		n, errObj := getNumber("not", args, 0)
		if errObj != nil {
			return errObj
		}
		return lispi.MakeBoolean(!n.IsTrue())
	},
}
