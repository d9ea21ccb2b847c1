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

package messages_test

import (
	"testing"

	"github.com/LodestoneProject/lodestone-core/pkg/messages"
	"github.com/stretchr/testify/assert"
)

func TestTypeFromString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, messages.TypeSay, messages.TypeFromString("say"))
	assert.Equal(t, messages.TypeWarn, messages.TypeFromString("warn"))
	assert.Equal(t, messages.TypeError, messages.TypeFromString("error"))

	// Unknown names are treated as the most severe type.
	assert.Equal(t, messages.TypeError, messages.TypeFromString("bogus"))
	assert.Equal(t, messages.TypeError, messages.TypeFromString(""))
}

func TestAsMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("empty_list_renders_nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, messages.AsMarkdown(nil))
	})

	t.Run("renders_each_severity", func(t *testing.T) {
		t.Parallel()

		got := messages.AsMarkdown([]messages.SimpleMessage{
			messages.Say("settings missing"),
			messages.Warn("manifest skipped"),
			messages.Error("drive listing failed"),
		})

		want := "## Messages\n\n" +
			"- Note: settings missing\n" +
			"- Warning: manifest skipped\n" +
			"- Error: drive listing failed\n"
		assert.Equal(t, want, got)
	})
}
