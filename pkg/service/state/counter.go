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

package state

import (
	"github.com/LodestoneProject/lodestone-core/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

// UnappliedChangeCounter tracks edits the user has made but not yet
// applied. It is mutated from UI-triggered edits and read when deciding
// whether to warn about discarding changes; all operations are atomic with
// respect to each other.
type UnappliedChangeCounter struct {
	count uint
	mu    syncutil.Mutex
}

// Increment records one unapplied change.
func (c *UnappliedChangeCounter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

// Decrement records that one change was applied or discarded. A decrement
// with no matching increment is a caller bug; the counter clamps at zero
// and logs it rather than crash the application over UI bookkeeping.
func (c *UnappliedChangeCounter) Decrement() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count == 0 {
		log.Warn().Msg("unapplied change counter decremented at zero")
		return
	}
	c.count--
}

// HasUnappliedChanges reports whether any changes remain unapplied.
func (c *UnappliedChangeCounter) HasUnappliedChanges() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count > 0
}
