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

package lispi

import (
	"io"
	"strings"
)

// SExpr is an ordered sequence of values that the evaluator treats as a
// function application.
type SExpr []Object

// QExpr is an ordered sequence of values that evaluates to itself. It is
// structurally identical to SExpr; the two are interchangeable by conversion.
type QExpr []Object

// MakeSExpr creates an S-Expression with the given objects.
func MakeSExpr(objs ...Object) SExpr { return SExpr(objs) }

// MakeQExpr creates a Q-Expression with the given objects.
func MakeQExpr(objs ...Object) QExpr { return QExpr(objs) }

// IsNil returns false; even the empty S-Expression is a proper value.
func (SExpr) IsNil() bool { return false }

// IsNil returns false; even the empty Q-Expression is a proper value.
func (QExpr) IsNil() bool { return false }

// IsAtom returns true iff the sequence is empty.
func (s SExpr) IsAtom() bool { return len(s) == 0 }

// IsAtom returns true iff the sequence is empty.
func (q QExpr) IsAtom() bool { return len(q) == 0 }

// IsEqual compares two S-Expressions for structural equality. A Q-Expression
// is never equal to an S-Expression, even with identical children.
func (s SExpr) IsEqual(other Object) bool {
	otherS, isSExpr := other.(SExpr)
	return isSExpr && cellsEqual(s, otherS)
}

// IsEqual compares two Q-Expressions for structural equality.
func (q QExpr) IsEqual(other Object) bool {
	otherQ, isQExpr := other.(QExpr)
	return isQExpr && cellsEqual(q, otherQ)
}

func cellsEqual(xs, ys []Object) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !x.IsEqual(ys[i]) {
			return false
		}
	}
	return true
}

// Copy produces a deep copy of the S-Expression.
func (s SExpr) Copy() Object { return SExpr(copyCells(s)) }

// Copy produces a deep copy of the Q-Expression.
func (q QExpr) Copy() Object { return QExpr(copyCells(q)) }

// CopyCells produces a deep copy of a child sequence.
func CopyCells(cells []Object) []Object { return copyCells(cells) }

func copyCells(cells []Object) []Object {
	if cells == nil {
		return nil
	}
	result := make([]Object, len(cells))
	for i, cell := range cells {
		result[i] = cell.Copy()
	}
	return result
}

// String returns the parenthesized representation.
func (s SExpr) String() string { return cellsString(s) }

// String returns the braced representation.
func (q QExpr) String() string { return cellsString(q) }

func cellsString(obj Object) string {
	var sb strings.Builder
	if _, err := Print(&sb, obj); err != nil {
		return err.Error()
	}
	return sb.String()
}

// Print writes the parenthesized representation to the given Writer.
func (s SExpr) Print(w io.Writer) (int, error) { return printCells(w, "(", ")", s) }

// Print writes the braced representation to the given Writer.
func (q QExpr) Print(w io.Writer) (int, error) { return printCells(w, "{", "}", q) }

func printCells(w io.Writer, open, close string, cells []Object) (int, error) {
	length, err := io.WriteString(w, open)
	if err != nil {
		return length, err
	}
	var l int
	for i, cell := range cells {
		if i > 0 {
			l, err = io.WriteString(w, " ")
			length += l
			if err != nil {
				return length, err
			}
		}
		l, err = Print(w, cell)
		length += l
		if err != nil {
			return length, err
		}
	}
	l, err = io.WriteString(w, close)
	return length + l, err
}

// GetSExpr returns the object as an S-Expression, if possible.
func GetSExpr(obj Object) (SExpr, bool) {
	if IsNil(obj) {
		return nil, false
	}
	s, ok := obj.(SExpr)
	return s, ok
}

// GetQExpr returns the object as a Q-Expression, if possible.
func GetQExpr(obj Object) (QExpr, bool) {
	if IsNil(obj) {
		return nil, false
	}
	q, ok := obj.(QExpr)
	return q, ok
}
