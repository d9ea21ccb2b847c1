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

// Package state owns the mutable session state of the application and
// sequences startup.
package state

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/LodestoneProject/lodestone-core/pkg/config"
	"github.com/LodestoneProject/lodestone-core/pkg/gamingroot"
	"github.com/LodestoneProject/lodestone-core/pkg/games"
	"github.com/LodestoneProject/lodestone-core/pkg/helpers"
	"github.com/LodestoneProject/lodestone-core/pkg/helpers/syncutil"
	"github.com/LodestoneProject/lodestone-core/pkg/messages"
	"github.com/LodestoneProject/lodestone-core/pkg/platforms"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// State holds the session: loaded settings, the current game, discovered
// Xbox gaming roots and the diagnostics accumulated during startup. It is
// constructed once by the composition root and shared by reference with
// whichever threads need it.
//
// LOCKING RULES: mu protects currentGame, xboxGamingRoots and
// initMessages. The settings Instance and the counter carry their own
// locks. To keep UI-thread getters responsive during a long discovery or
// game load, mu is only ever held around in-memory field access — never
// across locator calls, sorting engine calls or file I/O.
//
// Init is not reentrant. It is expected to run on a single background
// worker while getters are called from the UI thread.
type State struct {
	UnappliedChangeCounter

	fs       afero.Fs
	platform platforms.Platform
	locator  games.Locator
	settings *config.Instance

	currentGame     string
	xboxGamingRoots []string
	initMessages    []messages.SimpleMessage
	mu              syncutil.RWMutex
}

// New builds the session state. The settings file lives in the platform's
// data directory; nothing is read from disk until Init.
func New(fsys afero.Fs, pl platforms.Platform, locator games.Locator) *State {
	return &State{
		fs:       fsys,
		platform: pl,
		locator:  locator,
		settings: config.NewInstance(filepath.Join(pl.DataDir(), config.SettingsFile)),
	}
}

// Init runs the startup sequence: ensure the data directory, load
// settings, discover Xbox gaming roots, ensure the prelude directory,
// apply any game path override, select the current game and load its
// data. Failures to create the data or prelude directories are fatal;
// everything else is recovered and recorded as a diagnostic.
//
// requestedGame and requestedGamePath come from the command line and may
// be empty.
func (s *State) Init(ctx context.Context, requestedGame, requestedGamePath string) error {
	dataDir := s.platform.DataDir()
	if err := s.fs.MkdirAll(dataDir, 0o750); err != nil {
		return fmt.Errorf("create data directory %s: %w", dataDir, err)
	}

	s.loadSettings()
	s.findXboxGamingRoots()

	preludeDir := filepath.Join(dataDir, config.PreludeDir)
	if err := s.fs.MkdirAll(preludeDir, 0o750); err != nil {
		return fmt.Errorf("create prelude directory %s: %w", preludeDir, err)
	}

	if requestedGame != "" && requestedGamePath != "" {
		if !s.settings.SetGamePathOverride(requestedGame, requestedGamePath) {
			s.appendInitMessage(messages.Warn(fmt.Sprintf(
				"The requested game %q is not a known game; ignoring its install path.",
				requestedGame)))
		}
	}

	selected, paths := s.selectInitialGame(requestedGame)

	s.mu.Lock()
	s.currentGame = selected
	s.mu.Unlock()

	if selected == "" {
		// A valid terminal state: nothing is installed.
		log.Info().Msg("no supported game is installed")
		s.appendInitMessage(messages.Say("None of the supported games were detected."))
		return nil
	}

	log.Info().Str("game", selected).Msg("selected initial game")

	game, ok := s.settings.GameByFolder(selected)
	if !ok || paths == nil {
		return fmt.Errorf("selected game %q has no settings record", selected)
	}

	// The engine may block on I/O for a while; mu is not held here.
	if err := s.locator.InitGameData(ctx, game, *paths); err != nil {
		return err
	}

	return nil
}

// loadSettings reads the settings file, keeping defaults and recording a
// diagnostic if it is absent or cannot be parsed. Startup continues either
// way.
func (s *State) loadSettings() {
	err := s.settings.Load()
	if err == nil {
		return
	}

	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", s.settings.Path()).
			Msg("no settings file found, using defaults")
		s.appendInitMessage(messages.Say(
			"No settings file was found. Continuing with default settings."))
		return
	}

	log.Error().Err(err).Str("path", s.settings.Path()).
		Msg("failed to load settings, using defaults")
	s.appendInitMessage(messages.Warn(fmt.Sprintf(
		"The settings file could not be read and default settings are in use: %s", err)))
}

// findXboxGamingRoots enumerates drive roots and parses each drive's
// gaming root manifest. The pass is best-effort: a failure on one drive
// becomes a diagnostic and the rest of the drives are still checked.
func (s *State) findXboxGamingRoots() {
	roots, err := s.platform.DriveRoots()
	if err != nil {
		log.Error().Err(err).Msg("failed to list drive roots")
		s.appendInitMessage(messages.Error(fmt.Sprintf(
			"Failed to list drive roots while looking for Xbox installs: %s", err)))
		return
	}

	var gamingRoots []string
	for _, root := range roots {
		path, err := gamingroot.Find(s.fs, root)
		if err != nil {
			log.Warn().Err(err).Str("drive", root).Msg("skipping malformed gaming root file")
			s.appendInitMessage(messages.Warn(fmt.Sprintf(
				"The Xbox gaming root file on %q could not be interpreted: %s", root, err)))
			continue
		}
		if path != "" {
			gamingRoots = append(gamingRoots, path)
		}
	}

	log.Debug().Strs("gamingRoots", gamingRoots).Msg("discovered Xbox gaming roots")

	s.mu.Lock()
	s.xboxGamingRoots = gamingRoots
	s.mu.Unlock()
}

// selectInitialGame picks the current game: the requested game if it is
// installed, else the settings' preferred game if installed, else the
// first installed game in settings order, else none.
func (s *State) selectInitialGame(requested string) (string, *games.GamePaths) {
	gameList := s.settings.Games()
	roots := s.XboxGamingRootPaths()

	// Each game is resolved at most once per selection pass, so a game that
	// failed as the requested or preferred choice is not retried by the
	// fallback loop and cannot append its diagnostic twice.
	tried := make(map[string]bool)

	resolve := func(game config.GameSettings) *games.GamePaths {
		paths, err := s.locator.FindGamePaths(game, roots)
		if err != nil {
			log.Warn().Err(err).Str("game", game.Folder).Msg("failed to resolve game paths")
			s.appendInitMessage(messages.Warn(fmt.Sprintf(
				"Failed to check whether %s is installed: %s", game.Name, err)))
			return nil
		}
		return paths
	}

	tryFolder := func(folder string) (string, *games.GamePaths) {
		for _, g := range gameList {
			if !helpers.FilenamesEqual(g.Folder, folder) {
				continue
			}
			if tried[g.Folder] {
				return "", nil
			}
			tried[g.Folder] = true
			if paths := resolve(g); paths != nil {
				return g.Folder, paths
			}
			return "", nil
		}
		return "", nil
	}

	if requested != "" {
		if folder, paths := tryFolder(requested); paths != nil {
			return folder, paths
		}
	}

	if preferred := s.settings.PreferredGame(); preferred != "" {
		if folder, paths := tryFolder(preferred); paths != nil {
			return folder, paths
		}
	}

	for _, g := range gameList {
		if tried[g.Folder] {
			continue
		}
		tried[g.Folder] = true
		if paths := resolve(g); paths != nil {
			return g.Folder, paths
		}
	}

	return "", nil
}

// CurrentGame returns the selected game's folder name, or an empty string
// before initialization or when no game is installed.
func (s *State) CurrentGame() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentGame
}

// SetCurrentGame switches the active game.
func (s *State) SetCurrentGame(folder string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentGame = folder
}

// InitMessages returns a copy of the diagnostics recorded during Init.
func (s *State) InitMessages() []messages.SimpleMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := make([]messages.SimpleMessage, len(s.initMessages))
	copy(msgs, s.initMessages)
	return msgs
}

// XboxGamingRootPaths returns a copy of the discovered Xbox games folder
// paths.
func (s *State) XboxGamingRootPaths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roots := make([]string, len(s.xboxGamingRoots))
	copy(roots, s.xboxGamingRoots)
	return roots
}

// Settings returns the shared settings instance, which carries its own
// lock.
func (s *State) Settings() *config.Instance {
	return s.settings
}

func (s *State) appendInitMessage(msg messages.SimpleMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initMessages = append(s.initMessages, msg)
}
