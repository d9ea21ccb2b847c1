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

// Package config loads and persists the application settings file,
// including the declared game records discovery operates on.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/LodestoneProject/lodestone-core/pkg/helpers"
	"github.com/LodestoneProject/lodestone-core/pkg/helpers/syncutil"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SchemaVersion is the settings file schema this build reads and writes.
const SchemaVersion = 1

// Values is the serialized shape of the settings file.
type Values struct {
	Games        []GameSettings `toml:"games,omitempty"`
	Game         string         `toml:"game,omitempty"`
	InstallID    string         `toml:"install_id,omitempty"`
	ConfigSchema int            `toml:"config_schema"`
	DebugLogging bool           `toml:"debug_logging"`
}

// DefaultValues returns the settings used when no file exists or the file
// cannot be read.
func DefaultValues() Values {
	return Values{
		ConfigSchema: SchemaVersion,
		Games:        DefaultGames(),
	}
}

// Instance is a settings file loaded into memory. All access is guarded by
// its mutex; it is safe to share between the UI thread and a background
// initialization thread.
type Instance struct {
	path string
	vals Values
	mu   syncutil.RWMutex
}

// NewInstance creates an instance holding default values. No file I/O is
// performed until Load or Save.
func NewInstance(path string) *Instance {
	return &Instance{
		path: path,
		vals: DefaultValues(),
	}
}

// Load reads the settings file. On any failure the in-memory values are
// left untouched, so the caller can continue with what it had (defaults on
// first load) and record a diagnostic.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.path == "" {
		return errors.New("settings path not set")
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top, so fields
	// not present in the file keep their default values.
	newVals := DefaultValues()
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"settings schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("settings schema version mismatch")
	}

	if len(newVals.Games) == 0 {
		newVals.Games = DefaultGames()
	}

	c.vals = newVals
	return nil
}

// Save writes the current settings to disk.
func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.path == "" {
		return errors.New("settings path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	if c.vals.InstallID == "" {
		newID := uuid.New().String()
		c.vals.InstallID = newID
		log.Info().Msgf("generated new install id: %s", newID)
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Path returns the settings file path.
func (c *Instance) Path() string {
	return c.path
}

// Games returns a copy of the declared game records.
func (c *Instance) Games() []GameSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()

	games := make([]GameSettings, len(c.vals.Games))
	copy(games, c.vals.Games)
	return games
}

// GameByFolder looks up a game record by its installation folder name,
// compared with filesystem case folding semantics.
func (c *Instance) GameByFolder(folder string) (GameSettings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, g := range c.vals.Games {
		if helpers.FilenamesEqual(g.Folder, folder) {
			return g, true
		}
	}
	return GameSettings{}, false
}

// PreferredGame returns the folder name of the game the user prefers to
// select at startup, or an empty string.
func (c *Instance) PreferredGame() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Game
}

// SetPreferredGame sets the startup game preference.
func (c *Instance) SetPreferredGame(folder string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Game = folder
}

// SetGamePathOverride replaces the install path override of the named game
// record for this session only; the change is not persisted unless Save is
// called. Reports whether a matching record was found.
func (c *Instance) SetGamePathOverride(folder, path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.vals.Games {
		if helpers.FilenamesEqual(c.vals.Games[i].Folder, folder) {
			c.vals.Games[i].Path = path
			return true
		}
	}
	return false
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
