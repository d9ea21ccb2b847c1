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

package games

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrValueNotFound means the registry value does not exist in any view.
// This is an expected outcome of discovery, distinct from a read failure.
var ErrValueNotFound = errors.New("registry value not found")

// ErrInvalidRootKey means a registry descriptor names an unrecognized
// root key.
var ErrInvalidRootKey = errors.New("invalid registry root key")

// RegistryReader reads install paths registered by game installers. On
// platforms without a registry every value is reported as not found.
type RegistryReader interface {
	// StringValue reads a string value. Returns ErrValueNotFound when the
	// key or value is absent; any other error is a real read failure.
	StringValue(rootKey, subKey, valueName string) (string, error)

	// SubKeys lists the names of a key's direct subkeys. An absent key
	// yields an empty list, not an error.
	SubKeys(rootKey, subKey string) ([]string, error)
}

var rootKeyNames = map[string]struct{}{
	"HKEY_CLASSES_ROOT":   {},
	"HKEY_CURRENT_CONFIG": {},
	"HKEY_CURRENT_USER":   {},
	"HKEY_LOCAL_MACHINE":  {},
	"HKEY_USERS":          {},
}

func validateRootKey(name string) error {
	if _, ok := rootKeyNames[name]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRootKey, name)
	}
	return nil
}

// registryView selects which WOW64 registry view a read goes through.
type registryView int

const (
	view32Bit registryView = iota
	view64Bit
)

// stringValueFromViews reads a value through the 32-bit registry view and
// retries through the 64-bit view when the value does not exist there.
// Installers register under either view, so both must be consulted before
// concluding the value is absent. notExist is the platform's sentinel for
// an absent key or value; any other error aborts without the retry.
func stringValueFromViews(
	read func(registryView) (string, error),
	notExist error,
) (string, error) {
	value, err := read(view32Bit)
	if errors.Is(err, notExist) {
		log.Info().Msg("value not found in 32-bit registry view, trying 64-bit registry view")
		value, err = read(view64Bit)
	}

	if errors.Is(err, notExist) {
		return "", ErrValueNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
