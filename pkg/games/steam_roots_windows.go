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

//go:build windows

package games

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// defaultSteamRoots finds the Steam install directory from the registry.
func defaultSteamRoots(reg RegistryReader) []string {
	path, err := reg.StringValue("HKEY_CURRENT_USER", `Software\Valve\Steam`, "SteamPath")
	if err != nil {
		if !errors.Is(err, ErrValueNotFound) {
			log.Warn().Err(err).Msg("failed to read Steam path from registry")
		}
		return nil
	}

	// Steam writes this value with forward slashes.
	return []string{strings.ReplaceAll(path, "/", `\`)}
}
