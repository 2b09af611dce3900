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

package lispireader

import (
	"strconv"

	lispi "github.com/saifali96/Lispi"
)

// ReadNode turns a syntax tree node into a value. The root node reads as an
// S-Expression of its children; comments are dropped.
func ReadNode(node *Node) lispi.Object {
	switch node.Kind {
	case KindNumber:
		return readNumber(node.Text)
	case KindString:
		return lispi.MakeString(lispi.Unescape(stripQuotes(node.Text)))
	case KindOperator:
		return lispi.MakeSymbol(node.Text)
	case KindRoot, KindSExpr:
		return lispi.SExpr(readCells(node.Children))
	case KindQExpr:
		return lispi.QExpr(readCells(node.Children))
	}
	return lispi.SExpr{}
}

// ReadProgram turns a program's root node into the inert list of its
// top-level expressions.
func ReadProgram(root *Node) lispi.QExpr {
	return lispi.QExpr(readCells(root.Children))
}

func readCells(children []*Node) []lispi.Object {
	cells := make([]lispi.Object, 0, len(children))
	for _, child := range children {
		if child.Kind == KindComment {
			continue
		}
		cells = append(cells, ReadNode(child))
	}
	return cells
}

func readNumber(text string) lispi.Object {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return lispi.MakeError("Invalid number.")
	}
	return lispi.Int64(n)
}

func stripQuotes(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}
