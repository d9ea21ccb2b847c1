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

// Package windows implements the host-platform strategy for Windows.
package windows

import (
	"fmt"
	"path/filepath"

	"github.com/LodestoneProject/lodestone-core/pkg/config"
	"github.com/LodestoneProject/lodestone-core/pkg/platforms"
	"github.com/adrg/xdg"
	"golang.org/x/sys/windows"
)

type Platform struct{}

// NewPlatform returns the Windows host-platform strategy.
func NewPlatform() *Platform {
	return &Platform{}
}

func (*Platform) ID() string {
	return platforms.PlatformIDWindows
}

// DriveRoots lists all logical drive root paths. It queries the buffer
// length needed to hold every drive string, allocates exactly that plus a
// terminator, queries again and splits on the embedded NULs.
func (*Platform) DriveRoots() ([]string, error) {
	bufLen, err := windows.GetLogicalDriveStrings(0, nil)
	if err != nil {
		return nil, fmt.Errorf("query length of the buffer needed to hold all drive root paths: %w", err)
	}

	buf := make([]uint16, bufLen+1)
	n, err := windows.GetLogicalDriveStrings(uint32(len(buf)), &buf[0])
	if err != nil {
		return nil, fmt.Errorf("list logical drive strings: %w", err)
	}
	buf = buf[:n]

	var roots []string
	start := 0
	for i, c := range buf {
		if c == 0 {
			if i > start {
				roots = append(roots, windows.UTF16ToString(buf[start:i]))
			}
			start = i + 1
		}
	}

	return roots, nil
}

// DataDir returns the application data directory under local appdata.
func (*Platform) DataDir() string {
	return filepath.Join(xdg.DataHome, config.AppName)
}

// LocalDataPath returns a game's local appdata directory, which is where
// the supported games keep their load order state.
func (*Platform) LocalDataPath(folderName string) (string, error) {
	return filepath.Join(xdg.DataHome, folderName), nil
}
