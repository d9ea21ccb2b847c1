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

// Package gamingroot reads the binary .GamingRoot manifest the Xbox app
// writes at the root of a drive that hosts its games folder.
//
// The file is the byte sequence 52 47 42 58 01 00 00 00 followed by the
// null-terminated UTF-16LE path of the games folder relative to the drive
// root.
package gamingroot

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
)

// FileName is the manifest's fixed name at a drive root.
const FileName = ".GamingRoot"

// header is the magic/version prefix, four UTF-16 code units long.
var header = []byte{0x52, 0x47, 0x42, 0x58, 0x01, 0x00, 0x00, 0x00}

// headerUnits is the number of UTF-16 code units covered by the header.
const headerUnits = 4

// Corruption errors. A missing manifest is never an error; these are only
// returned for a file that exists but cannot be interpreted.
var (
	// ErrOddByteCount means the file has an odd number of bytes and so
	// cannot be UTF-16LE.
	ErrOddByteCount = errors.New("gaming root file has an odd number of bytes")

	// ErrTooShort means the file ends before any path content.
	ErrTooShort = errors.New("gaming root file is shorter than expected")
)

// Find looks for a manifest at the given drive root and returns the
// absolute path of the drive's games folder.
//
// A drive without a manifest returns ("", nil): most drives do not host an
// Xbox install. An unreadable manifest is also not an error, since that
// commonly means a removable drive with no medium present; it is logged
// and skipped. A manifest that exists and is readable but malformed
// returns a corruption error, so callers can surface it.
func Find(fsys afero.Fs, driveRoot string) (string, error) {
	manifestPath := filepath.Join(driveRoot, FileName)

	info, err := fsys.Stat(manifestPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", manifestPath).
				Msg("cannot stat gaming root file, skipping drive")
		}
		return "", nil
	}
	if !info.Mode().IsRegular() {
		return "", nil
	}

	data, err := afero.ReadFile(fsys, manifestPath)
	if err != nil {
		log.Error().Err(err).Str("path", manifestPath).
			Msg("failed to read gaming root file, skipping drive")
		return "", nil
	}

	log.Debug().Str("path", manifestPath).Str("bytes", hex.EncodeToString(data)).
		Msg("read gaming root file")

	relativePath, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", manifestPath, err)
	}

	log.Debug().Str("relativePath", relativePath).
		Msg("read games folder path from gaming root file")

	return filepath.Join(driveRoot, relativePath), nil
}

// Decode extracts the relative games folder path from raw manifest bytes.
// The trailing null terminator is stripped.
func Decode(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", ErrOddByteCount
	}
	if len(data)/2 < headerUnits+1 {
		return "", ErrTooShort
	}

	// Drop the header units and the terminator unit.
	payload := data[headerUnits*2 : len(data)-2]

	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	relativePath, err := dec.Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("decode UTF-16LE path: %w", err)
	}

	return string(relativePath), nil
}

// Encode builds manifest bytes for a relative games folder path. Used for
// writing test fixtures; Encode(Decode(b)) reproduces b for any valid
// manifest.
func Encode(relativePath string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	encoded, err := enc.Bytes([]byte(relativePath))
	if err != nil {
		return nil, fmt.Errorf("encode UTF-16LE path: %w", err)
	}

	data := make([]byte, 0, len(header)+len(encoded)+2)
	data = append(data, header...)
	data = append(data, encoded...)
	data = append(data, 0x00, 0x00)
	return data, nil
}
