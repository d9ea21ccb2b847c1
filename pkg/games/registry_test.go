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

package games

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValueFromViews(t *testing.T) {
	t.Parallel()

	notExist := errors.New("value does not exist")

	t.Run("value_in_32_bit_view_skips_64_bit_view", func(t *testing.T) {
		t.Parallel()

		var consulted []registryView
		value, err := stringValueFromViews(func(v registryView) (string, error) {
			consulted = append(consulted, v)
			return `C:\Games\Skyrim`, nil
		}, notExist)

		require.NoError(t, err)
		assert.Equal(t, `C:\Games\Skyrim`, value)
		assert.Equal(t, []registryView{view32Bit}, consulted)
	})

	t.Run("absent_in_32_bit_view_consults_64_bit_view", func(t *testing.T) {
		t.Parallel()

		var consulted []registryView
		value, err := stringValueFromViews(func(v registryView) (string, error) {
			consulted = append(consulted, v)
			if v == view32Bit {
				return "", notExist
			}
			return `C:\Games\Skyrim`, nil
		}, notExist)

		require.NoError(t, err)
		assert.Equal(t, `C:\Games\Skyrim`, value)
		assert.Equal(t, []registryView{view32Bit, view64Bit}, consulted)
	})

	t.Run("absent_in_both_views_is_not_found", func(t *testing.T) {
		t.Parallel()

		_, err := stringValueFromViews(func(registryView) (string, error) {
			return "", notExist
		}, notExist)

		assert.ErrorIs(t, err, ErrValueNotFound)
	})

	t.Run("wrapped_not_exist_still_triggers_the_retry", func(t *testing.T) {
		t.Parallel()

		var consulted []registryView
		_, err := stringValueFromViews(func(v registryView) (string, error) {
			consulted = append(consulted, v)
			return "", errors.Join(errors.New("open key"), notExist)
		}, notExist)

		assert.ErrorIs(t, err, ErrValueNotFound)
		assert.Equal(t, []registryView{view32Bit, view64Bit}, consulted)
	})

	t.Run("hard_error_in_32_bit_view_aborts_without_retry", func(t *testing.T) {
		t.Parallel()

		bang := errors.New("access denied")
		var consulted []registryView
		_, err := stringValueFromViews(func(v registryView) (string, error) {
			consulted = append(consulted, v)
			return "", bang
		}, notExist)

		require.ErrorIs(t, err, bang)
		assert.Equal(t, []registryView{view32Bit}, consulted)
	})

	t.Run("hard_error_in_64_bit_view_propagates", func(t *testing.T) {
		t.Parallel()

		bang := errors.New("value type mismatch")
		_, err := stringValueFromViews(func(v registryView) (string, error) {
			if v == view32Bit {
				return "", notExist
			}
			return "", bang
		}, notExist)

		require.ErrorIs(t, err, bang)
	})
}
