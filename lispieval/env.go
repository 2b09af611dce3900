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

package lispieval

import (
	"fmt"
	"strings"

	lispi "github.com/saifali96/Lispi"
)

type mapSymObj = map[lispi.Symbol]lispi.Object

// Env maintains a mapping between symbols and values. The parent link points
// strictly upward; the chain ends at the root environment.
type Env struct {
	parent *Env
	vars   mapSymObj
}

// RootEnvSize is the base size of the root environment. It holds at least
// all builtins.
const RootEnvSize = 64

// MakeRootEnv creates a new root environment.
func MakeRootEnv() *Env {
	return &Env{vars: make(mapSymObj, RootEnvSize)}
}

// MakeEnv creates a fresh environment without a parent. The parent is set
// at call time.
func MakeEnv() *Env {
	return &Env{vars: make(mapSymObj, 4)}
}

// Parent returns the parent environment, or nil for the root.
func (env *Env) Parent() *Env { return env.parent }

// SetParent attaches the environment below the given parent.
func (env *Env) SetParent(parent *Env) { env.parent = parent }

// Root walks the parent chain up to the root environment.
func (env *Env) Root() *Env {
	root := env
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Lookup searches the environment and its parents for a binding of the given
// symbol and returns a deep copy of the bound value. An unbound symbol yields
// an error value.
func (env *Env) Lookup(sym lispi.Symbol) lispi.Object {
	for scope := env; scope != nil; scope = scope.parent {
		if obj, found := scope.vars[sym]; found {
			return obj.Copy()
		}
	}
	return lispi.Errorf("Unbound operator '%s'!", sym.Name())
}

// Put binds the symbol to a deep copy of the value in this scope, replacing
// a previous local binding.
func (env *Env) Put(sym lispi.Symbol, obj lispi.Object) {
	env.vars[sym] = obj.Copy()
}

// Def binds the symbol in the root environment.
func (env *Env) Def(sym lispi.Symbol, obj lispi.Object) {
	env.Root().Put(sym, obj)
}

// Copy deep-copies the scope's bindings. The parent link is copied by
// reference.
func (env *Env) Copy() *Env {
	if env == nil {
		return nil
	}
	vars := make(mapSymObj, len(env.vars))
	for sym, obj := range env.vars {
		vars[sym] = obj.Copy()
	}
	return &Env{parent: env.parent, vars: vars}
}

// String describes the scope for diagnostics.
func (env *Env) String() string {
	var sb strings.Builder
	if env.parent == nil {
		sb.WriteString("#<env:root")
	} else {
		sb.WriteString("#<env")
	}
	fmt.Fprintf(&sb, "/%d>", len(env.vars))
	return sb.String()
}
