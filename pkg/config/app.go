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

const (
	// AppName is the directory name used for application data.
	AppName = "Lodestone"

	// SettingsFile is the name of the settings file in the data directory.
	SettingsFile = "settings.toml"

	// PreludeDir is the shared directory of baseline metadata consumed by
	// the sorting engine, created under the data directory at startup.
	PreludeDir = "prelude"
)
