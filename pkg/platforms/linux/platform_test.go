// Lodestone
// Copyright (c) 2026 The Lodestone Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Lodestone.
//
// Lodestone is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lodestone is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lodestone.  If not, see <http://www.gnu.org/licenses/>.

package linux

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMountTable(t *testing.T) {
	t.Parallel()

	t.Run("returns_mount_directories", func(t *testing.T) {
		t.Parallel()

		table := strings.Join([]string{
			"/dev/sda1 / ext4 rw,relatime 0 0",
			"proc /proc proc rw,nosuid,nodev,noexec 0 0",
			"/dev/sdb1 /mnt/games ext4 rw,relatime 0 0",
		}, "\n")

		roots, err := parseMountTable(strings.NewReader(table))
		require.NoError(t, err)
		assert.Equal(t, []string{"/", "/proc", "/mnt/games"}, roots)
	})

	t.Run("decodes_octal_escapes", func(t *testing.T) {
		t.Parallel()

		table := `/dev/sdc1 /mnt/games\040drive ext4 rw 0 0` + "\n" +
			`/dev/sdd1 /mnt/back\134slash ext4 rw 0 0`

		roots, err := parseMountTable(strings.NewReader(table))
		require.NoError(t, err)
		assert.Equal(t, []string{"/mnt/games drive", `/mnt/back\slash`}, roots)
	})

	t.Run("skips_malformed_lines", func(t *testing.T) {
		t.Parallel()

		table := "garbage\n/dev/sda1 / ext4 rw 0 0\n\n"
		roots, err := parseMountTable(strings.NewReader(table))
		require.NoError(t, err)
		assert.Equal(t, []string{"/"}, roots)
	})

	t.Run("empty_table_yields_no_roots", func(t *testing.T) {
		t.Parallel()

		roots, err := parseMountTable(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, roots)
	})

	t.Run("line_longer_than_buffer_is_an_error", func(t *testing.T) {
		t.Parallel()

		table := "/dev/sda1 /mnt/" + strings.Repeat("x", mountLineBuffer) + " ext4 rw 0 0"
		_, err := parseMountTable(strings.NewReader(table))
		require.Error(t, err)
	})
}

func TestUnescapeMountPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/mnt/plain", unescapeMountPath("/mnt/plain"))
	assert.Equal(t, "/mnt/a b", unescapeMountPath(`/mnt/a\040b`))
	assert.Equal(t, "/mnt/a\tb", unescapeMountPath(`/mnt/a\011b`))
	assert.Equal(t, "/mnt/a\nb", unescapeMountPath(`/mnt/a\012b`))
	assert.Equal(t, `/mnt/a\b`, unescapeMountPath(`/mnt/a\134b`))
}

func TestDataDir(t *testing.T) {
	t.Run("prefers_xdg_config_home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		t.Setenv("HOME", "/home/user")

		p := NewPlatform()
		assert.Equal(t, "/custom/config/Lodestone", p.DataDir())
	})

	t.Run("falls_back_to_home_config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/user")

		p := NewPlatform()
		assert.Equal(t, "/home/user/.config/Lodestone", p.DataDir())
	})
}

func TestLocalDataPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	p := NewPlatform()
	path, err := p.LocalDataPath("Skyrim Special Edition")
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/Skyrim Special Edition", path)
}
