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

package lispieval_test

import (
	"testing"

	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispieval"
)

func syms(names ...string) lispi.QExpr {
	q := make(lispi.QExpr, len(names))
	for i, name := range names {
		q[i] = lispi.MakeSymbol(name)
	}
	return q
}

// addLambda builds (\ {x y} {add x y}).
func addLambda() *lispieval.Lambda {
	return lispieval.MakeLambda(
		syms("x", "y"),
		lispi.MakeQExpr(lispi.MakeSymbol("add"), lispi.MakeSymbol("x"), lispi.MakeSymbol("y")),
	)
}

func addEnv() *lispieval.Env {
	env := lispieval.MakeRootEnv()
	env.Put(lispi.MakeSymbol("add"), &addBuiltin)
	return env
}

func TestLambdaFullApplication(t *testing.T) {
	t.Parallel()

	env := addEnv()
	form := lispi.MakeSExpr(addLambda(), lispi.Int64(2), lispi.Int64(3))
	if got := lispieval.Eval(env, form); !got.IsEqual(lispi.Int64(5)) {
		t.Errorf("expected 5, but got %v", got)
	}
}

func TestLambdaPartialApplication(t *testing.T) {
	t.Parallel()

	env := addEnv()
	partial := lispieval.Eval(env, lispi.MakeSExpr(addLambda(), lispi.Int64(2)))
	fn, isLambda := partial.(*lispieval.Lambda)
	if !isLambda {
		t.Fatalf("partial application must yield a lambda, but got %T/%v", partial, partial)
	}
	if !fn.Formals.IsEqual(syms("y")) {
		t.Errorf("remaining formals expected {y}, but got %v", fn.Formals)
	}

	got := lispieval.Eval(env, lispi.MakeSExpr(fn, lispi.Int64(40)))
	if !got.IsEqual(lispi.Int64(42)) {
		t.Errorf("expected 42, but got %v", got)
	}
}

func TestLambdaTooManyArguments(t *testing.T) {
	t.Parallel()

	env := addEnv()
	form := lispi.MakeSExpr(addLambda(), lispi.Int64(1), lispi.Int64(2), lispi.Int64(3))
	got := lispieval.Eval(env, form)
	exp := lispi.MakeError("Function passed too many arguments! Got 3, Expected 2.")
	if !exp.IsEqual(got) {
		t.Errorf("expected %v, but got %v", exp, got)
	}
}

func TestLambdaVariadic(t *testing.T) {
	t.Parallel()

	env := lispieval.MakeRootEnv()
	pack := lispieval.MakeLambda(syms("&", "xs"), syms("xs"))

	form := lispi.MakeSExpr(pack, lispi.Int64(1), lispi.Int64(2), lispi.Int64(3))
	got := lispieval.Eval(env, form)
	exp := lispi.MakeQExpr(lispi.Int64(1), lispi.Int64(2), lispi.Int64(3))
	if !exp.IsEqual(got) {
		t.Errorf("expected %v, but got %v", exp, got)
	}
}

func TestLambdaVariadicWithoutArguments(t *testing.T) {
	t.Parallel()

	env := lispieval.MakeRootEnv()
	pack := lispieval.MakeLambda(syms("&", "xs"), syms("xs"))

	// Zero arguments bind the collector to the empty Q-Expression.
	got := pack.Call(env, lispi.SExpr{})
	if !got.IsEqual(lispi.QExpr{}) {
		t.Errorf("expected {}, but got %v", got)
	}
}

func TestLambdaVariadicMixed(t *testing.T) {
	t.Parallel()

	env := lispieval.MakeRootEnv()
	first := lispieval.MakeLambda(syms("x", "&", "rest"), syms("rest"))

	form := lispi.MakeSExpr(first, lispi.Int64(1), lispi.Int64(2), lispi.Int64(3))
	got := lispieval.Eval(env, form)
	if !got.IsEqual(lispi.MakeQExpr(lispi.Int64(2), lispi.Int64(3))) {
		t.Errorf("expected {2 3}, but got %v", got)
	}
}

func TestLambdaMalformedVariadic(t *testing.T) {
	t.Parallel()

	env := lispieval.MakeRootEnv()

	// '&' not followed by exactly one formal, with arguments to bind.
	bad := lispieval.MakeLambda(syms("x", "&"), syms("x"))
	got := lispieval.Eval(env, lispi.MakeSExpr(bad, lispi.Int64(1), lispi.Int64(2)))
	exp := lispi.MakeError("Function formal invalid! Operator '&' not followed by a single operator.")
	if !exp.IsEqual(got) {
		t.Errorf("expected %v, but got %v", exp, got)
	}

	// The same diagnostic, whatever the type of the argument left for '&'.
	bad = lispieval.MakeLambda(syms("x", "&"), syms("x"))
	got = lispieval.Eval(env, lispi.MakeSExpr(bad, lispi.Int64(1), lispi.MakeString("pad")))
	if !lispi.IsError(got) {
		t.Errorf("expected an error value, but got %v", got)
	}
}

func TestLambdaLeftoverAmpersand(t *testing.T) {
	t.Parallel()

	env := lispieval.MakeRootEnv()
	bad := lispieval.MakeLambda(syms("x", "&", "y", "z"), syms("x"))
	got := bad.Call(env, lispi.SExpr{lispi.Int64(1)})
	exp := lispi.MakeError("Function format invalid! Symbol '&' no followed by a single symbol.")
	if !exp.IsEqual(got) {
		t.Errorf("expected %v, but got %v", exp, got)
	}
}

func TestLambdaEquality(t *testing.T) {
	t.Parallel()

	a := addLambda()
	b := addLambda()
	if !a.IsEqual(b) {
		t.Error("lambdas with equal formals and bodies must be equal")
	}

	b.Env.Put(lispi.MakeSymbol("x"), lispi.Int64(1))
	if !a.IsEqual(b) {
		t.Error("the captured environment must not take part in equality")
	}

	c := lispieval.MakeLambda(syms("x"), syms("x"))
	if a.IsEqual(c) {
		t.Error("lambdas with different formals must not be equal")
	}
}

func TestLambdaCopyIndependence(t *testing.T) {
	t.Parallel()

	orig := addLambda()
	cpy := orig.Copy().(*lispieval.Lambda)
	cpy.Env.Put(lispi.MakeSymbol("x"), lispi.Int64(1))
	cpy.Formals[0] = lispi.MakeSymbol("z")

	if !orig.Formals.IsEqual(syms("x", "y")) {
		t.Errorf("mutating the copy changed the original formals: %v", orig.Formals)
	}
	if got := orig.Env.Lookup(lispi.MakeSymbol("x")); !lispi.IsError(got) {
		t.Errorf("the copied environment must be independent, but found %v", got)
	}
}

func TestLambdaPrint(t *testing.T) {
	t.Parallel()

	got := addLambda().String()
	exp := "(\\ {x y} {add x y})"
	if got != exp {
		t.Errorf("expected %q, but got %q", exp, got)
	}
}

func TestLambdaFreeVariableThroughCaller(t *testing.T) {
	t.Parallel()

	env := addEnv()
	env.Put(lispi.MakeSymbol("base"), lispi.Int64(100))

	fn := lispieval.MakeLambda(
		syms("x"),
		lispi.MakeQExpr(lispi.MakeSymbol("add"), lispi.MakeSymbol("base"), lispi.MakeSymbol("x")),
	)
	got := lispieval.Eval(env, lispi.MakeSExpr(fn, lispi.Int64(1)))
	if !got.IsEqual(lispi.Int64(101)) {
		t.Errorf("free variables must resolve through the caller, but got %v", got)
	}
}
