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

package helpers

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procCompareStringOrdinal = kernel32.NewProc("CompareStringOrdinal")
)

// CompareStringOrdinal return values.
const (
	cstrLessThan    = 1
	cstrEqual       = 2
	cstrGreaterThan = 3
)

// CompareFilenames orders two filenames using CompareStringOrdinal, which
// performs case conversion with the operating system's uppercase table.
// That matches the filesystem's own case-insensitive name matching and is
// not locale-dependent. Returns -1, 0 or 1. Input that cannot be converted
// to UTF-16 is a contract violation and returns an error.
func CompareFilenames(lhs, rhs string) (int, error) {
	l, err := windows.UTF16FromString(lhs)
	if err != nil {
		return 0, fmt.Errorf("filename %q cannot be converted to UTF-16: %w", lhs, err)
	}
	r, err := windows.UTF16FromString(rhs)
	if err != nil {
		return 0, fmt.Errorf("filename %q cannot be converted to UTF-16: %w", rhs, err)
	}

	// Lengths exclude the NUL terminator UTF16FromString appends.
	ret, _, _ := procCompareStringOrdinal.Call(
		uintptr(unsafe.Pointer(&l[0])), uintptr(len(l)-1),
		uintptr(unsafe.Pointer(&r[0])), uintptr(len(r)-1),
		1, // ignore case
	)

	switch ret {
	case cstrLessThan:
		return -1, nil
	case cstrEqual:
		return 0, nil
	case cstrGreaterThan:
		return 1, nil
	default:
		return 0, fmt.Errorf("CompareStringOrdinal rejected filenames %q and %q", lhs, rhs)
	}
}
