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

//go:build !windows

package helpers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// CompareFilenames orders two filenames case-insensitively using Unicode
// default case folding, which matches how case-insensitive filesystems
// treat names on non-Windows platforms. Returns -1, 0 or 1. Input that is
// not valid UTF-8 is a contract violation and returns an error.
func CompareFilenames(lhs, rhs string) (int, error) {
	if !utf8.ValidString(lhs) {
		return 0, fmt.Errorf("filename %q is not valid UTF-8", lhs)
	}
	if !utf8.ValidString(rhs) {
		return 0, fmt.Errorf("filename %q is not valid UTF-8", rhs)
	}

	// cases.Caser values are stateful, so build one per call rather than
	// sharing across goroutines.
	fold := cases.Fold()
	return strings.Compare(fold.String(lhs), fold.String(rhs)), nil
}
