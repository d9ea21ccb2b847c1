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
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/LodestoneProject/lodestone-core/pkg/config"
	"github.com/LodestoneProject/lodestone-core/pkg/platforms"
	"github.com/LodestoneProject/lodestone-core/pkg/sorting"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultLocator resolves game installs in order: user override, registry,
// Xbox games folders, Steam libraries. It holds no per-game state; every
// resolution operates on the values passed by the caller.
type DefaultLocator struct {
	fs         afero.Fs
	platform   platforms.Platform
	registry   RegistryReader
	engine     sorting.Engine
	steamRoots func() []string
}

// NewLocator builds the default locator.
func NewLocator(
	fsys afero.Fs,
	pl platforms.Platform,
	reg RegistryReader,
	engine sorting.Engine,
) *DefaultLocator {
	return &DefaultLocator{
		fs:       fsys,
		platform: pl,
		registry: reg,
		engine:   engine,
		steamRoots: func() []string {
			return defaultSteamRoots(reg)
		},
	}
}

// FindGamePaths resolves the game's install path and local data path.
// Returns (nil, nil) when the game is not installed.
func (l *DefaultLocator) FindGamePaths(
	game config.GameSettings, //nolint:gocritic // settings record copied for immutability
	xboxGamingRoots []string,
) (*GamePaths, error) {
	install, err := l.findInstallPath(&game, xboxGamingRoots)
	if err != nil {
		return nil, err
	}
	if install == "" {
		return nil, nil
	}

	// The local data path does not depend on where the install was found.
	localData, err := l.platform.LocalDataPath(game.LocalDataFolder())
	if err != nil {
		return nil, fmt.Errorf("resolve local data path for %s: %w", game.Name, err)
	}

	log.Debug().
		Str("game", game.Folder).
		Str("install", install).
		Str("localData", localData).
		Msg("resolved game paths")

	return &GamePaths{Install: install, LocalData: localData}, nil
}

func (l *DefaultLocator) findInstallPath(
	game *config.GameSettings,
	xboxGamingRoots []string,
) (string, error) {
	// A configured override wins outright; it is used as-is beyond an
	// existence check.
	if game.Path != "" {
		if l.dirExists(game.Path) {
			return game.Path, nil
		}
		log.Warn().
			Str("game", game.Folder).
			Str("path", game.Path).
			Msg("configured install path does not exist")
	}

	for _, rv := range game.Registry {
		value, err := l.registry.StringValue(rv.Root, rv.Key, rv.Name)
		if errors.Is(err, ErrValueNotFound) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("registry lookup for %s: %w", game.Folder, err)
		}
		if value != "" && l.dirExists(value) {
			return value, nil
		}
	}

	for _, root := range xboxGamingRoots {
		path := filepath.Join(root, game.Folder)
		if l.dirExists(path) {
			return path, nil
		}
	}

	if path := l.findSteamInstall(game); path != "" {
		return path, nil
	}

	// Not installed anywhere we know to look. A normal state.
	return "", nil
}

// InitGameData hands the resolved game to the sorting engine. Callers must
// not hold state locks across this call.
func (l *DefaultLocator) InitGameData(
	ctx context.Context,
	game config.GameSettings, //nolint:gocritic // settings record copied for immutability
	paths GamePaths,
) error {
	log.Info().
		Str("game", game.Folder).
		Str("install", paths.Install).
		Msg("loading game data")

	if err := l.engine.LoadGame(ctx, paths.Install, paths.LocalData, game.Folder); err != nil {
		return fmt.Errorf("load game data for %s: %w", game.Name, err)
	}
	return nil
}

func (l *DefaultLocator) dirExists(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && info.IsDir()
}
