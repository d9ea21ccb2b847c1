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

package games

// unsupportedRegistry stands in on platforms without a registry. Lookups
// still validate their input, then report every value as not found, which
// discovery treats as the game simply not being registered.
type unsupportedRegistry struct{}

// NewRegistryReader returns the registry reader for this platform.
func NewRegistryReader() RegistryReader {
	return unsupportedRegistry{}
}

func (unsupportedRegistry) StringValue(rootKeyName, _, _ string) (string, error) {
	if err := validateRootKey(rootKeyName); err != nil {
		return "", err
	}
	return "", ErrValueNotFound
}

func (unsupportedRegistry) SubKeys(rootKeyName, _ string) ([]string, error) {
	if err := validateRootKey(rootKeyName); err != nil {
		return nil, err
	}
	return nil, nil
}
