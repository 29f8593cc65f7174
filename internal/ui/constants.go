// Package ui provides shared UI constants and utilities.
package ui

import "time"

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 3

	// CardWidth is the outer width of an entity card, border included.
	CardWidth = 26

	// CardHeight is the outer height of an entity card, border included.
	CardHeight = 11
)

// DefaultDoubleClick is the maximum delay between two presses on the same
// row for them to count as a double-click.
const DefaultDoubleClick = 400 * time.Millisecond
