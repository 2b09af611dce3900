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

// Contains the arithmetic builtins. All operands must be numbers; with two
// or more operands the operation folds from the left.

import (
	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
)

// Add is the builtin that implements (+ n...).
var Add = arithBuiltin("+")

// Sub is the builtin that implements (- n...). With a single operand it
// negates.
var Sub = arithBuiltin("-")

// Mul is the builtin that implements (* n...).
var Mul = arithBuiltin("*")

// Div is the builtin that implements (/ n...).
var Div = arithBuiltin("/")

// Mod is the builtin that implements (% n...).
var Mod = arithBuiltin("%")

// Pow is the builtin that implements (^ base exp...), integer power.
var Pow = arithBuiltin("^")

// Min is the builtin that implements (min n...).
var Min = arithBuiltin("min")

// Max is the builtin that implements (max n...).
var Max = arithBuiltin("max")

func arithBuiltin(op string) lispieval.Builtin {
	return lispieval.Builtin{
		Name:     op,
		MinArity: 1,
		MaxArity: -1,
		Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
			for i := range args {
				if _, errObj := getNumber(op, args, i); errObj != nil {
					return errObj
				}
			}

			acc := args[0].(lispi.Number)
			if op == "-" && len(args) == 1 {
				return -acc
			}

			for _, arg := range args[1:] {
				operand := arg.(lispi.Number)
				switch op {
				case "+":
					acc += operand
				case "-":
					acc -= operand
				case "*":
					acc *= operand
				case "/":
					if operand == 0 {
						return lispi.MakeError("Division By Zero!")
					}
					acc /= operand
				case "%":
					if operand == 0 {
						return lispi.MakeError("Division By Zero!")
					}
					acc %= operand
				case "^":
					acc = intPow(acc, operand)
				case "min":
					acc = min(acc, operand)
				case "max":
					acc = max(acc, operand)
				}
			}
			return acc
		},
	}
}

// intPow raises base to a non-negative integer power. A negative exponent
// truncates toward zero: only bases 1 and -1 keep a magnitude of one.
func intPow(base, exp lispi.Number) lispi.Number {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}
	result := lispi.Number(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
