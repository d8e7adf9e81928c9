/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Tablesorter Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/google/tablesorter/core/colorize"
)

func TestLoadFromReader(t *testing.T) {
	data := `
[server]
listen = ":9000"

[table]
id = "domains"
row_classes = ["light", "dark"]

[[source]]
name = "domains"
path = "domains.csv"

[[source]]
name = "archive"
path = "archive.yaml"

[log]
level = "debug"
`
	cfg, err := LoadFromReader(strings.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Server.Listen)
	require.Len(t, cfg.Sources, 2)
	require.Equal(t, "archive", cfg.Sources[1].Name)
	require.Equal(t, colorize.Palette{"light", "dark"}, cfg.Palette())

	opts := cfg.TableOptions()
	require.Equal(t, "domains", opts.TableID)
	require.Equal(t, []string{"sorted", "can_not_sort_more"}, opts.ActiveClasses)
	require.Equal(t, "sorted", cfg.RenderOptions().ActiveClass)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8097", cfg.Server.Listen)
	require.Equal(t, colorize.DefaultPalette(), cfg.Palette())
	require.Empty(t, cfg.Sources)
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, Default().Server, cfg.Server)
}

func TestMissingFileValidatesEnvOverrides(t *testing.T) {
	t.Setenv("TABLESORTER_LOG_LEVEL", "bogus")

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)

	_, err = LoadFromReader(strings.NewReader(""))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TABLESORTER_LISTEN", "0.0.0.0:1234")
	t.Setenv("TABLESORTER_LOG_LEVEL", "warn")

	cfg, err := LoadFromReader(strings.NewReader(`[server]
listen = "ignored:1"`))
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:1234", cfg.Server.Listen)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestValidation(t *testing.T) {
	testCases := map[string]string{
		"bad level":      "[log]\nlevel = \"loud\"\n",
		"missing path":   "[[source]]\nname = \"a\"\n",
		"missing name":   "[[source]]\npath = \"a.csv\"\n",
		"duplicate name": "[[source]]\nname = \"a\"\npath = \"a.csv\"\n[[source]]\nname = \"a\"\npath = \"b.csv\"\n",
		"bad toml":       "[server\n",
	}
	for name, data := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(data))
			require.Error(t, err)
		})
	}
}
