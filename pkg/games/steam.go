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
	"path/filepath"
	"strings"

	"github.com/LodestoneProject/lodestone-core/pkg/config"
	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const steamAppsDir = "steamapps"

// findSteamInstall checks every Steam library's common folder for the
// game's installation folder. Best-effort: a Steam root that cannot be
// read or parsed is logged and skipped, never fatal to resolution.
func (l *DefaultLocator) findSteamInstall(game *config.GameSettings) string {
	for _, root := range l.steamRoots() {
		libraries, err := steamLibraryFolders(l.fs, root)
		if err != nil {
			log.Debug().Err(err).Str("steamRoot", root).
				Msg("skipping unreadable Steam library folders file")
			continue
		}

		for _, library := range libraries {
			path := filepath.Join(library, steamAppsDir, "common", game.Folder)
			if l.dirExists(path) {
				return path
			}
		}
	}
	return ""
}

// steamLibraryFolders parses a Steam root's libraryfolders.vdf and returns
// the library paths it lists.
func steamLibraryFolders(fsys afero.Fs, steamRoot string) ([]string, error) {
	f, err := fsys.Open(filepath.Join(steamRoot, steamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		return nil, fmt.Errorf("open libraryfolders.vdf: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing libraryfolders.vdf")
		}
	}()

	p := vdf.NewParser(f)
	m, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse libraryfolders.vdf: %w", err)
	}

	// VDF keys are case-insensitive; Go maps are not.
	var folders map[string]any
	for k, v := range m {
		if strings.EqualFold(k, "libraryfolders") {
			if fm, ok := v.(map[string]any); ok {
				folders = fm
			}
			break
		}
	}
	if folders == nil {
		return nil, errors.New("libraryfolders.vdf has no libraryfolders map")
	}

	var paths []string
	for id, v := range folders {
		entry, ok := v.(map[string]any)
		if !ok {
			log.Debug().Str("library", id).Msg("library entry is not a map")
			continue
		}
		for k, pv := range entry {
			if strings.EqualFold(k, "path") {
				if path, ok := pv.(string); ok {
					paths = append(paths, path)
				}
				break
			}
		}
	}

	return paths, nil
}
