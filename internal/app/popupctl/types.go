// internal/app/popupctl/types.go
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Profile
	Help
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Help,
	Profile,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Profile,
	Help,
	Error,
}
