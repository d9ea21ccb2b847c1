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

package main

import (
	"github.com/LodestoneProject/lodestone-core/pkg/platforms"
	"github.com/LodestoneProject/lodestone-core/pkg/platforms/windows"
)

func newPlatform() platforms.Platform {
	return windows.NewPlatform()
}
