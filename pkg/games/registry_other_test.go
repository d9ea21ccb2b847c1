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

//go:build !windows

package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistryReader()

	t.Run("every_value_is_not_found", func(t *testing.T) {
		t.Parallel()

		_, err := reg.StringValue(
			"HKEY_LOCAL_MACHINE", `Software\Bethesda Softworks\Skyrim`, "Installed Path")
		assert.ErrorIs(t, err, ErrValueNotFound)
	})

	t.Run("invalid_root_key_is_still_rejected", func(t *testing.T) {
		t.Parallel()

		_, err := reg.StringValue("HKEY_BOGUS", `Software\Whatever`, "Value")
		assert.ErrorIs(t, err, ErrInvalidRootKey)

		_, err = reg.SubKeys("HKEY_BOGUS", `Software\Whatever`)
		assert.ErrorIs(t, err, ErrInvalidRootKey)
	})

	t.Run("subkeys_are_empty", func(t *testing.T) {
		t.Parallel()

		keys, err := reg.SubKeys("HKEY_CURRENT_USER", `Software\Valve\Steam`)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
