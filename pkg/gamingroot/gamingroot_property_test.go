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

package gamingroot_test

import (
	"testing"

	"github.com/LodestoneProject/lodestone-core/pkg/gamingroot"
	"pgregory.net/rapid"
)

// Decode is the inverse of Encode for any path that survives the UTF-16
// round trip, which excludes unpaired surrogates and interior NULs.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		path := rapid.StringMatching(`[A-Za-z0-9 ._\-]{0,64}`).Draw(t, "path")

		data, err := gamingroot.Encode(path)
		if err != nil {
			t.Fatalf("encode %q: %v", path, err)
		}

		decoded, err := gamingroot.Decode(data)
		if err != nil {
			t.Fatalf("decode %q: %v", path, err)
		}
		if decoded != path {
			t.Fatalf("round trip changed %q to %q", path, decoded)
		}
	})
}

// Every valid manifest has an even byte count, so truncating one byte must
// always be detected.
func TestTruncatedManifestIsDetected(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		path := rapid.StringMatching(`[A-Za-z0-9 ._\-]{0,64}`).Draw(t, "path")

		data, err := gamingroot.Encode(path)
		if err != nil {
			t.Fatalf("encode %q: %v", path, err)
		}

		if _, err := gamingroot.Decode(data[:len(data)-1]); err == nil {
			t.Fatalf("decode accepted a truncated manifest for %q", path)
		}
	})
}
