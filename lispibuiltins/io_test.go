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

package lispibuiltins_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lispi "github.com/saifali96/Lispi"
	"github.com/saifali96/Lispi/lispibuiltins"
)

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeScript(t, "lib.lspi", `
; a small library
(def {double} (\ {n} {* n 2}))
(def {answer} (double 21))
`)
	env := newEnv()
	result := lispibuiltins.LoadFile(env, path)
	assert.Equal(t, "()", result.String())

	got := run(t, env, "answer")
	assert.Equal(t, "42", got.String())
	got = run(t, env, "double 5")
	assert.Equal(t, "10", got.String())
}

func TestLoadFileContinuesAfterError(t *testing.T) {
	t.Parallel()

	path := writeScript(t, "mixed.lspi", `
(def {before} 1)
(boom)
(def {after} 2)
`)
	env := newEnv()
	result := lispibuiltins.LoadFile(env, path)
	assert.Equal(t, "()", result.String(), "an evaluation error must not halt loading")

	assert.Equal(t, "1", run(t, env, "before").String())
	assert.Equal(t, "2", run(t, env, "after").String())
}

func TestLoadFileDiagnostics(t *testing.T) {
	t.Parallel()

	env := newEnv()

	missing := filepath.Join(t.TempDir(), "absent.lspi")
	result := lispibuiltins.LoadFile(env, missing)
	err, isError := lispi.GetError(result)
	require.True(t, isError, "a missing file must yield a load error, got %v", result)
	assert.Contains(t, err.Message(), "Could not load Library")

	broken := writeScript(t, "broken.lspi", "(def {x} 1")
	result = lispibuiltins.LoadFile(env, broken)
	err, isError = lispi.GetError(result)
	require.True(t, isError, "a parse failure must yield a load error, got %v", result)
	assert.Contains(t, err.Message(), "Could not load Library")
	assert.Contains(t, err.Message(), "expecting ')'")
}

func TestLoadBuiltinFromLanguage(t *testing.T) {
	t.Parallel()

	path := writeScript(t, "lib.lspi", "(def {loaded} 1)")
	env := newEnv()

	got := run(t, env, `load "`+path+`"`)
	assert.Equal(t, "()", got.String())
	assert.Equal(t, "1", run(t, env, "loaded").String())

	got = run(t, env, "load 5")
	assert.Equal(t,
		"Error: Function 'load' passed incorrect type for argument 0. Got Number, Expected String.",
		got.String())
}

func TestLoadEvaluatesInRootEnvironment(t *testing.T) {
	t.Parallel()

	path := writeScript(t, "lib.lspi", "(def {fromfile} 3)")
	env := newEnv()

	// Trigger load from inside a function call; the definition must land
	// at the root nevertheless.
	run(t, env, `def {loader} (\ {p} {load p})`)
	got := run(t, env, `loader "`+path+`"`)
	assert.Equal(t, "()", got.String())
	assert.Equal(t, "3", run(t, env, "fromfile").String())
}
