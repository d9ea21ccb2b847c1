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

package helpers_test

import (
	"testing"

	"github.com/LodestoneProject/lodestone-core/pkg/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareFilenames(t *testing.T) {
	t.Parallel()

	t.Run("equal_ignoring_ascii_case", func(t *testing.T) {
		t.Parallel()
		r, err := helpers.CompareFilenames("Skyrim.esm", "skyrim.ESM")
		require.NoError(t, err)
		assert.Zero(t, r)
	})

	t.Run("equal_ignoring_non_ascii_case", func(t *testing.T) {
		t.Parallel()
		r, err := helpers.CompareFilenames("Ärger.esp", "ärger.esp")
		require.NoError(t, err)
		assert.Zero(t, r)
	})

	t.Run("folds_sharp_s_to_ss", func(t *testing.T) {
		t.Parallel()
		r, err := helpers.CompareFilenames("straße", "STRASSE")
		require.NoError(t, err)
		assert.Zero(t, r)
	})

	t.Run("different_names_order_consistently", func(t *testing.T) {
		t.Parallel()

		less, err := helpers.CompareFilenames("alpha", "beta")
		require.NoError(t, err)
		assert.Equal(t, -1, less)

		greater, err := helpers.CompareFilenames("beta", "alpha")
		require.NoError(t, err)
		assert.Equal(t, 1, greater)
	})

	t.Run("invalid_utf8_is_an_error", func(t *testing.T) {
		t.Parallel()

		_, err := helpers.CompareFilenames(string([]byte{0xff, 0xfe}), "a")
		require.Error(t, err)

		_, err = helpers.CompareFilenames("a", string([]byte{0xff, 0xfe}))
		require.Error(t, err)
	})
}

func TestFilenamesEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, helpers.FilenamesEqual("Oblivion", "oblivion"))
	assert.False(t, helpers.FilenamesEqual("Oblivion", "Morrowind"))

	// Invalid input never compares equal, even to itself.
	invalid := string([]byte{0xff})
	assert.False(t, helpers.FilenamesEqual(invalid, invalid))
}
