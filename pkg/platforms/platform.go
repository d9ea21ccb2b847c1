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

// Package platforms defines the host-platform strategy used by game
// discovery. Each supported OS provides one implementation; callers depend
// only on this interface.
package platforms

const (
	PlatformIDWindows = "windows"
	PlatformIDLinux   = "linux"
)

// Platform is the capability set game discovery needs from the host OS.
type Platform interface {
	// ID returns the platform identifier.
	ID() string

	// DriveRoots lists the root paths of all mounted volumes or logical
	// drives. No ordering is guaranteed. Failure to enumerate at all is an
	// error; discovery treats it as fatal for the call.
	DriveRoots() ([]string, error)

	// DataDir returns the application's persistent data directory. The
	// directory is not created by this call.
	DataDir() string

	// LocalDataPath resolves the local application data directory for a
	// game's folder name. It does not depend on the game's install path
	// being resolved.
	LocalDataPath(folderName string) (string, error)
}
