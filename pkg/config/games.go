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

package config

// RegistryValue describes one registry location that may hold a game's
// install path.
type RegistryValue struct {
	// Root is one of the registry root key names: HKEY_CLASSES_ROOT,
	// HKEY_CURRENT_CONFIG, HKEY_CURRENT_USER, HKEY_LOCAL_MACHINE or
	// HKEY_USERS.
	Root string `toml:"root"`
	// Key is the subkey path under the root key.
	Key string `toml:"key"`
	// Name is the value name to read.
	Name string `toml:"name"`
}

// GameSettings declares one supported game. Loaded records are immutable
// for the session apart from a session-only path override; a settings
// reload replaces them wholesale.
type GameSettings struct {
	// Type identifies the game.
	Type string `toml:"type"`
	// Name is the display name.
	Name string `toml:"name"`
	// Folder is the game's installation folder name, also used as the
	// name of its local data folder unless LocalFolder overrides it.
	Folder string `toml:"folder"`
	// LocalFolder optionally overrides the local data folder name.
	LocalFolder string `toml:"local_folder,omitempty"`
	// Path is an optional user-supplied install path override.
	Path string `toml:"path,omitempty"`
	// Registry lists registry locations that may hold the install path.
	Registry []RegistryValue `toml:"registry,omitempty"`
}

// LocalDataFolder returns the folder name to use for the game's local data.
func (g *GameSettings) LocalDataFolder() string {
	if g.LocalFolder != "" {
		return g.LocalFolder
	}
	return g.Folder
}

// DefaultGames returns the built-in game definitions used when the
// settings file is absent or does not list any games.
func DefaultGames() []GameSettings {
	return []GameSettings{
		{
			Type:   "Morrowind",
			Name:   "TES III: Morrowind",
			Folder: "Morrowind",
			Registry: []RegistryValue{
				{Root: "HKEY_LOCAL_MACHINE", Key: `Software\Bethesda Softworks\Morrowind`, Name: "Installed Path"},
			},
		},
		{
			Type:   "Oblivion",
			Name:   "TES IV: Oblivion",
			Folder: "Oblivion",
			Registry: []RegistryValue{
				{Root: "HKEY_LOCAL_MACHINE", Key: `Software\Bethesda Softworks\Oblivion`, Name: "Installed Path"},
			},
		},
		{
			Type:   "Skyrim",
			Name:   "TES V: Skyrim",
			Folder: "Skyrim",
			Registry: []RegistryValue{
				{Root: "HKEY_LOCAL_MACHINE", Key: `Software\Bethesda Softworks\Skyrim`, Name: "Installed Path"},
			},
		},
		{
			Type:   "Skyrim Special Edition",
			Name:   "TES V: Skyrim Special Edition",
			Folder: "Skyrim Special Edition",
			Registry: []RegistryValue{
				{Root: "HKEY_LOCAL_MACHINE", Key: `Software\Bethesda Softworks\Skyrim Special Edition`, Name: "Installed Path"},
				{
					Root: "HKEY_LOCAL_MACHINE",
					Key:  `Software\Microsoft\Windows\CurrentVersion\Uninstall\Steam App 489830`,
					Name: "InstallLocation",
				},
			},
		},
		{
			Type:   "Fallout3",
			Name:   "Fallout 3",
			Folder: "Fallout3",
			Registry: []RegistryValue{
				{Root: "HKEY_LOCAL_MACHINE", Key: `Software\Bethesda Softworks\Fallout3`, Name: "Installed Path"},
			},
		},
		{
			Type:   "FalloutNV",
			Name:   "Fallout: New Vegas",
			Folder: "FalloutNV",
			Registry: []RegistryValue{
				{Root: "HKEY_LOCAL_MACHINE", Key: `Software\Bethesda Softworks\FalloutNV`, Name: "Installed Path"},
			},
		},
		{
			Type:   "Fallout4",
			Name:   "Fallout 4",
			Folder: "Fallout4",
			Registry: []RegistryValue{
				{Root: "HKEY_LOCAL_MACHINE", Key: `Software\Bethesda Softworks\Fallout4`, Name: "Installed Path"},
			},
		},
	}
}
