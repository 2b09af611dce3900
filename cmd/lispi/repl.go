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

package main

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/saifali96/Lispi/lispieval"
	"github.com/saifali96/Lispi/lispireader"
)

// repl runs the interactive prompt until interrupt or end of input. Each
// line is parsed as a complete program and evaluated as one expression; the
// result is printed on its own line.
func repl(env *lispieval.Env, cfg *config) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()

	fmt.Println("Welcome to Lispi 0.0.1.0")
	fmt.Println("Press Ctrl+C to exit!")

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		root, err := lispireader.ParseString("<stdin>", line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(lispieval.Eval(env, lispireader.ReadNode(root)))
	}
}
