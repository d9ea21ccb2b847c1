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

// Package sorting declares the interface of the external load-order
// sorting engine. The engine itself is a separate component; this core
// only hands it a resolved game location and receives an ordered plugin
// list back.
package sorting

import "context"

// Engine is the load-order sorting collaborator.
type Engine interface {
	// LoadGame loads the game's plugin and metadata state from its
	// resolved install path and optional local data path. Implementations
	// may block on I/O; callers must not hold state locks across this
	// call.
	LoadGame(ctx context.Context, installPath, localDataPath, folder string) error

	// Sort computes the load order for the given plugin names.
	Sort(ctx context.Context, plugins []string) ([]string, error)
}
