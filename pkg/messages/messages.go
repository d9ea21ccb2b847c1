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

// Package messages holds the user-facing diagnostic messages accumulated
// during startup and discovery, independent of any UI layer.
package messages

import "strings"

// MessageType is the severity of a SimpleMessage.
type MessageType int

const (
	TypeSay MessageType = iota
	TypeWarn
	TypeError
)

// TypeFromString maps a settings-file message type name to a MessageType.
// Unknown names map to TypeError.
func TypeFromString(s string) MessageType {
	switch s {
	case "say":
		return TypeSay
	case "warn":
		return TypeWarn
	default:
		return TypeError
	}
}

// SimpleMessage is a single diagnostic shown to the user.
type SimpleMessage struct {
	Text string
	Type MessageType
}

// Say builds an informational message.
func Say(text string) SimpleMessage {
	return SimpleMessage{Type: TypeSay, Text: text}
}

// Warn builds a warning message.
func Warn(text string) SimpleMessage {
	return SimpleMessage{Type: TypeWarn, Text: text}
}

// Error builds an error message.
func Error(text string) SimpleMessage {
	return SimpleMessage{Type: TypeError, Text: text}
}

// AsMarkdown renders messages as a markdown list for export. Returns an
// empty string when there are no messages.
func AsMarkdown(msgs []SimpleMessage) string {
	if len(msgs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Messages\n\n")

	for _, msg := range msgs {
		b.WriteString("- ")

		switch msg.Type {
		case TypeWarn:
			b.WriteString("Warning: ")
		case TypeError:
			b.WriteString("Error: ")
		case TypeSay:
			b.WriteString("Note: ")
		}

		b.WriteString(msg.Text)
		b.WriteString("\n")
	}

	return b.String()
}
