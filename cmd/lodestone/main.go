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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/LodestoneProject/lodestone-core/pkg/games"
	"github.com/LodestoneProject/lodestone-core/pkg/helpers"
	"github.com/LodestoneProject/lodestone-core/pkg/messages"
	"github.com/LodestoneProject/lodestone-core/pkg/service/state"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// noopEngine satisfies the sorting engine seam for the discovery-only CLI,
// which reports what is installed without loading plugin data.
type noopEngine struct{}

func (noopEngine) LoadGame(_ context.Context, _, _, _ string) error { return nil }

func (noopEngine) Sort(_ context.Context, plugins []string) ([]string, error) {
	return plugins, nil
}

func main() {
	gameFlag := flag.String("game", "", "folder name of the game to select")
	gamePathFlag := flag.String("game-path", "", "install path override for the selected game")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	pl := newPlatform()

	if err := helpers.InitLogging(pl.DataDir(), []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stderr},
	}); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error: failed to initialize logging:", err)
		os.Exit(1)
	}
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	fsys := afero.NewOsFs()
	locator := games.NewLocator(fsys, pl, games.NewRegistryReader(), noopEngine{})
	st := state.New(fsys, pl, locator)

	if err := st.Init(context.Background(), *gameFlag, *gamePathFlag); err != nil {
		log.Error().Err(err).Msg("initialization failed")
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if st.Settings().DebugLogging() && !*debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if game := st.CurrentGame(); game != "" {
		fmt.Println("Selected game:", game)
	} else {
		fmt.Println("No game selected.")
	}

	for _, root := range st.XboxGamingRootPaths() {
		fmt.Println("Xbox games folder:", root)
	}

	if msgs := st.InitMessages(); len(msgs) > 0 {
		fmt.Println()
		fmt.Print(messages.AsMarkdown(msgs))
	}
}
