// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogLoad Op = "load catalog"

	// Playlist operations
	OpPlaylistAddSong    Op = "add song to playlist"
	OpPlaylistRemoveSong Op = "remove song from playlist"
	OpPlaylistList       Op = "list your playlists"

	// Song operations
	OpSongCopy Op = "copy song name"

	// Session operations
	OpSessionRead   Op = "read session"
	OpSessionLogout Op = "log out"

	// Navigation
	OpNavigate Op = "open page"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
