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

// Package main provides the lispi command: an interactive interpreter that
// can also load and evaluate files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispibuiltins"
	"github.com/saifali96/Lispi/lispieval"
)

func main() {
	var (
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "lispi [file...]",
		Short: "interpreter for the Lispi language",
		Long: "lispi evaluates Lispi programs. Without arguments it enters the\n" +
			"interactive prompt; with file arguments it loads and evaluates each\n" +
			"file in order.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			env := lispieval.MakeRootEnv()
			lispibuiltins.BindAll(env)

			for _, path := range cfg.Preload {
				if result := lispibuiltins.LoadFile(env, path); lispi.IsError(result) {
					fmt.Println(result)
				}
			}

			if len(args) > 0 {
				loadFiles(env, args)
				return nil
			}
			return repl(env, cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadFiles loads each file in order. Errors are printed but do not stop
// subsequent files.
func loadFiles(env *lispieval.Env, paths []string) {
	for _, path := range paths {
		if result := lispibuiltins.LoadFile(env, path); lispi.IsError(result) {
			fmt.Println(result)
		}
	}
}
