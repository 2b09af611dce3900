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

// Package lispireader parses Lispi source text into a syntax tree and reads
// the tree into values.
package lispireader

import (
	"bufio"
	"io"
	"strings"
)

// Parser consumes characters from a stream and parses them into a syntax
// tree.
type Parser struct {
	rr      io.RuneReader
	err     error
	name    string
	buf     []rune
	line    int
	col     int
	prevCol int
}

// MakeParser creates a new parser. The name is used in positions and
// diagnostics.
func MakeParser(name string, r io.Reader) *Parser {
	return &Parser{
		rr:   bufio.NewReader(r),
		name: name,
		line: 1,
	}
}

// ParseString parses the given source text into a program tree.
func ParseString(name, src string) (*Node, error) {
	return MakeParser(name, strings.NewReader(src)).Parse()
}

// Parse consumes the whole input and returns the program's root node.
func (p *Parser) Parse() (*Node, error) {
	root := &Node{Kind: KindRoot, Pos: p.position()}
	for {
		ch, err := p.skipSpace()
		if err == io.EOF {
			return root, nil
		}
		if err != nil {
			return nil, err
		}
		child, err := p.parseExpr(ch)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}
}

// nextRune returns the next rune from the input and advances the parser.
func (p *Parser) nextRune() (rune, error) {
	if p.err != nil {
		return -1, p.err
	}
	var ch rune
	if len(p.buf) > 0 {
		ch = p.buf[0]
		if len(p.buf) > 1 {
			p.buf = p.buf[1:]
		} else {
			p.buf = nil
		}
	} else {
		var err error
		ch, _, err = p.rr.ReadRune()
		if err != nil {
			p.err = err
			return -1, err
		}
	}

	if ch == '\n' {
		p.line++
		p.prevCol = p.col
		p.col = 0
	} else {
		p.col++
	}
	return ch, nil
}

// unreadRune returns a consumed rune back to the parser.
func (p *Parser) unreadRune(ch rune) {
	if ch == '\n' {
		p.line--
		p.col = p.prevCol
	} else {
		p.col--
	}
	p.buf = append([]rune{ch}, p.buf...)
}

// position reports the position of the rune consumed last.
func (p *Parser) position() Position {
	return Position{Name: p.name, Line: p.line, Col: p.col}
}

// skipSpace skips whitespace and returns the first non-space rune.
func (p *Parser) skipSpace() (rune, error) {
	for {
		ch, err := p.nextRune()
		if err != nil {
			return -1, err
		}
		if !isSpace(ch) {
			return ch, nil
		}
	}
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// isOperatorRune reports membership in the operator alphabet.
func isOperatorRune(ch rune) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	switch ch {
	case '_', '+', '-', '*', '/', '\\', '=', '<', '>', '!', '%', '^', '&':
		return true
	}
	return false
}

// parseExpr parses one expression. The first rune has already been consumed
// and is passed in.
func (p *Parser) parseExpr(ch rune) (*Node, error) {
	switch ch {
	case '(':
		return p.parseList(KindSExpr, ')')
	case '{':
		return p.parseList(KindQExpr, '}')
	case ')', '}':
		return nil, SyntaxError{Pos: p.position(), Msg: "unmatched delimiter '" + string(ch) + "'"}
	case '"':
		return p.parseString()
	case ';':
		return p.parseComment()
	}
	if isOperatorRune(ch) {
		return p.parseToken(ch)
	}
	return nil, SyntaxError{Pos: p.position(), Msg: "unexpected character '" + string(ch) + "'"}
}

// parseList parses the children of a bracketed list up to the closing
// delimiter.
func (p *Parser) parseList(kind NodeKind, close rune) (*Node, error) {
	node := &Node{Kind: kind, Pos: p.position()}
	for {
		ch, err := p.skipSpace()
		if err == io.EOF {
			return nil, SyntaxError{
				Pos: p.position(),
				Msg: "unexpected end of input, expecting '" + string(close) + "'",
			}
		}
		if err != nil {
			return nil, err
		}
		if ch == close {
			return node, nil
		}
		child, err := p.parseExpr(ch)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
}

// parseString parses a quoted string literal. The stored text keeps the
// surrounding quotes and the raw escape sequences.
func (p *Parser) parseString() (*Node, error) {
	node := &Node{Kind: KindString, Pos: p.position()}
	var sb strings.Builder
	sb.WriteByte('"')
	for {
		ch, err := p.nextRune()
		if err != nil {
			return nil, SyntaxError{Pos: p.position(), Msg: "unterminated string"}
		}
		sb.WriteRune(ch)
		switch ch {
		case '"':
			node.Text = sb.String()
			return node, nil
		case '\\':
			esc, err2 := p.nextRune()
			if err2 != nil {
				return nil, SyntaxError{Pos: p.position(), Msg: "unterminated string"}
			}
			sb.WriteRune(esc)
		}
	}
}

// parseComment consumes a comment up to the end of the line.
func (p *Parser) parseComment() (*Node, error) {
	node := &Node{Kind: KindComment, Pos: p.position()}
	var sb strings.Builder
	sb.WriteByte(';')
	for {
		ch, err := p.nextRune()
		if err != nil || ch == '\n' {
			node.Text = sb.String()
			return node, nil
		}
		sb.WriteRune(ch)
	}
}

// parseToken scans a maximal run of operator-alphabet runes and classifies
// it as a number or an operator.
func (p *Parser) parseToken(first rune) (*Node, error) {
	node := &Node{Pos: p.position()}
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		ch, err := p.nextRune()
		if err != nil {
			break
		}
		if !isOperatorRune(ch) {
			p.unreadRune(ch)
			break
		}
		sb.WriteRune(ch)
	}
	node.Text = sb.String()
	if isNumberText(node.Text) {
		node.Kind = KindNumber
	} else {
		node.Kind = KindOperator
	}
	return node, nil
}

// isNumberText reports whether the token matches -?[0-9]+.
func isNumberText(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || '9' < ch {
			return false
		}
	}
	return true
}
