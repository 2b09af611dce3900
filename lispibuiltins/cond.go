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

import (
	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
)

// If is the builtin that implements (if n {consequent} {alternative}). Both
// branches arrive inert; only the chosen one is made evaluable.
var If = lispieval.Builtin{
	Name:     "if",
	MinArity: 3,
	MaxArity: 3,
	Fn: func(env *lispieval.Env, args lispi.SExpr) lispi.Object {
		cond, errObj := getNumber("if", args, 0)
		if errObj != nil {
			return errObj
		}
		consequent, errObj := getQExpr("if", args, 1)
		if errObj != nil {
			return errObj
		}
		alternative, errObj := getQExpr("if", args, 2)
		if errObj != nil {
			return errObj
		}

		if cond.IsTrue() {
			return lispieval.Eval(env, lispi.SExpr(consequent))
		}
		return lispieval.Eval(env, lispi.SExpr(alternative))
	},
}
