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
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// config customizes the interactive prompt.
type config struct {
	Prompt      string   `yaml:"prompt"`
	HistoryFile string   `yaml:"history-file"`
	Preload     []string `yaml:"preload"`
}

const defaultPrompt = "Lispi> "

// loadConfig reads the YAML configuration. Without an explicit path it looks
// for ~/.lispi.yaml; a missing file yields the defaults.
func loadConfig(path string) (*config, error) {
	cfg := &config{Prompt: defaultPrompt}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".lispi_history")
		if path == "" {
			path = filepath.Join(home, ".lispi.yaml")
		}
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no configuration file", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read configuration %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse configuration %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	slog.Debug("configuration loaded", "path", path, "preload", len(cfg.Preload))
	return cfg, nil
}
