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

package games

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

type windowsRegistry struct{}

// NewRegistryReader returns the native Windows registry reader.
func NewRegistryReader() RegistryReader {
	return windowsRegistry{}
}

func rootKey(name string) (registry.Key, error) {
	switch name {
	case "HKEY_CLASSES_ROOT":
		return registry.CLASSES_ROOT, nil
	case "HKEY_CURRENT_CONFIG":
		return registry.CURRENT_CONFIG, nil
	case "HKEY_CURRENT_USER":
		return registry.CURRENT_USER, nil
	case "HKEY_LOCAL_MACHINE":
		return registry.LOCAL_MACHINE, nil
	case "HKEY_USERS":
		return registry.USERS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRootKey, name)
	}
}

// StringValue reads a registry string value, consulting both WOW64 views.
// On 32-bit Windows the 64-bit retry repeats the first attempt; not worth
// skipping for the few 32-bit users that remain.
func (windowsRegistry) StringValue(rootKeyName, subKey, valueName string) (string, error) {
	rk, err := rootKey(rootKeyName)
	if err != nil {
		return "", err
	}

	log.Trace().
		Str("root", rootKeyName).
		Str("key", subKey).
		Str("value", valueName).
		Msg("reading registry string value")

	value, err := stringValueFromViews(func(view registryView) (string, error) {
		access := uint32(registry.WOW64_32KEY)
		if view == view64Bit {
			access = registry.WOW64_64KEY
		}
		return readStringValue(rk, subKey, valueName, access)
	}, registry.ErrNotExist)

	if err != nil && !errors.Is(err, ErrValueNotFound) {
		return "", fmt.Errorf("read registry value %s\\%s\\%s: %w",
			rootKeyName, subKey, valueName, err)
	}

	return value, err
}

func readStringValue(rk registry.Key, subKey, valueName string, view uint32) (string, error) {
	k, err := registry.OpenKey(rk, subKey, registry.QUERY_VALUE|view)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := k.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry key")
		}
	}()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return "", err
	}
	return value, nil
}

// SubKeys lists the names of a key's direct subkeys. A key that simply
// does not exist is an unexceptional state and yields an empty list.
func (windowsRegistry) SubKeys(rootKeyName, subKey string) ([]string, error) {
	rk, err := rootKey(rootKeyName)
	if err != nil {
		return nil, err
	}

	k, err := registry.OpenKey(rk, subKey, registry.ENUMERATE_SUB_KEYS)
	if errors.Is(err, registry.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open registry key %s\\%s: %w", rootKeyName, subKey, err)
	}
	defer func() {
		if closeErr := k.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry key")
		}
	}()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("enumerate subkeys of %s\\%s: %w", rootKeyName, subKey, err)
	}
	return names, nil
}
