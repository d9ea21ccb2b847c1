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

// Package games resolves where declared games are installed, combining
// user overrides, the Windows registry, discovered Xbox games folders and
// Steam libraries.
package games

import (
	"context"

	"github.com/LodestoneProject/lodestone-core/pkg/config"
)

// GamePaths is a successful resolution result. It is never partially
// valid: Install is always set, LocalData is set where the platform has a
// local data location for the game.
type GamePaths struct {
	// Install is the absolute install path.
	Install string
	// LocalData is the absolute local data path, or empty where not
	// applicable.
	LocalData string
}

// Locator resolves install locations for declared games and performs any
// game-specific initialization once a game is selected. Callers depend on
// this capability set, not on a concrete game type.
type Locator interface {
	// FindGamePaths resolves the game's install and local data paths.
	// xboxGamingRoots are the games folders discovered from drive
	// manifests. A (nil, nil) return means the game is not installed,
	// which is a normal outcome, not an error.
	FindGamePaths(game config.GameSettings, xboxGamingRoots []string) (*GamePaths, error)

	// InitGameData loads the selected game's data through the sorting
	// engine collaborator.
	InitGameData(ctx context.Context, game config.GameSettings, paths GamePaths) error
}
