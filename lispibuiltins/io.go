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

// Contains the printing, error, and file loading builtins.

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
	"github.com/saifali96/Lispi/lispireader"
)

// PrintB prints its arguments in canonical form, space separated, followed
// by a newline.
var PrintB = lispieval.Builtin{
	Name:     "print",
	MinArity: 0,
	MaxArity: -1,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		var buf bytes.Buffer
		for i, arg := range args {
			if i > 0 {
				buf.WriteByte(' ')
			}
			_, _ = lispi.Print(&buf, arg)
		}
		buf.WriteByte('\n')
		_, _ = os.Stdout.Write(buf.Bytes())
		return lispi.SExpr{}
	},
}

// ErrorB turns a user-supplied string into an error value.
var ErrorB = lispieval.Builtin{
	Name:     "error",
	MinArity: 1,
	MaxArity: 1,
	Fn: func(_ *lispieval.Env, args lispi.SExpr) lispi.Object {
		s, errObj := getString("error", args, 0)
		if errObj != nil {
			return errObj
		}
		return lispi.MakeError(s.GetValue())
	},
}

// Load reads, parses, and evaluates a source file.
var Load = lispieval.Builtin{
	Name:     "load",
	MinArity: 1,
	MaxArity: 1,
	Fn: func(env *lispieval.Env, args lispi.SExpr) lispi.Object {
		s, errObj := getString("load", args, 0)
		if errObj != nil {
			return errObj
		}
		return LoadFile(env, s.GetValue())
	},
}

// LoadFile parses the named file and evaluates each top-level expression in
// the root environment. Error results are printed and do not halt loading.
// A file that cannot be read or parsed yields a load error value.
func LoadFile(env *lispieval.Env, path string) lispi.Object {
	slog.Debug("load file", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return lispi.Errorf("Could not load Library %s", err)
	}
	root, err := lispireader.ParseString(path, string(src))
	if err != nil {
		return lispi.Errorf("Could not load Library %s", err)
	}

	global := env.Root()
	for _, expr := range lispireader.ReadProgram(root) {
		result := lispieval.Eval(global, expr)
		if lispi.IsError(result) {
			fmt.Println(result)
		}
	}
	return lispi.SExpr{}
}
