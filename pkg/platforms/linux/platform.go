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

// Package linux implements the host-platform strategy for Linux.
package linux

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/LodestoneProject/lodestone-core/pkg/config"
	"github.com/LodestoneProject/lodestone-core/pkg/helpers"
	"github.com/LodestoneProject/lodestone-core/pkg/platforms"
	"github.com/rs/zerolog/log"
)

const mountTablePath = "/proc/self/mounts"

// mountLineBuffer bounds a single mount table line. 8 KiB exceeds any
// practical mount entry; .NET uses the same size for getmntent_r.
const mountLineBuffer = 8192

type Platform struct{}

// NewPlatform returns the Linux host-platform strategy.
func NewPlatform() *Platform {
	return &Platform{}
}

func (*Platform) ID() string {
	return platforms.PlatformIDLinux
}

// DriveRoots reads the live mount table and returns each entry's mount
// directory. The mount table always exists on a running kernel, so failure
// to open it is unexpected rather than routine.
func (*Platform) DriveRoots() ([]string, error) {
	f, err := os.Open(mountTablePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", mountTablePath, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing mount table")
		}
	}()

	return parseMountTable(f)
}

// parseMountTable collects the mount directory of each mount table entry.
func parseMountTable(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, mountLineBuffer), mountLineBuffer)

	var roots []string
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		roots = append(roots, unescapeMountPath(fields[1]))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read mount table: %w", err)
	}

	return roots, nil
}

// unescapeMountPath decodes the octal escapes the kernel uses for
// whitespace and backslashes in mount directories (\040, \011, \012, \134).
func unescapeMountPath(path string) string {
	if !strings.Contains(path, `\`) {
		return path
	}

	replacer := strings.NewReplacer(
		`\040`, " ",
		`\011`, "\t",
		`\012`, "\n",
		`\134`, `\`,
	)
	return replacer.Replace(path)
}

// DataDir resolves the persistent data directory: XDG_CONFIG_HOME if set,
// then HOME/.config, then the executable's own directory as a last resort.
func (*Platform) DataDir() string {
	return filepath.Join(configParentDir(), config.AppName)
}

// LocalDataPath returns the local data directory for a game folder. Games
// running under Proton keep local data outside the user's home, so this is
// only a conventional location on Linux.
func (*Platform) LocalDataPath(folderName string) (string, error) {
	return filepath.Join(configParentDir(), folderName), nil
}

func configParentDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}

	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}

	// If somehow both are missing, fall back to the executable's directory.
	return helpers.ExeDir()
}
