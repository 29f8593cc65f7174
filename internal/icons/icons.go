package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Artist   string
	Playlist string
	Song     string
	User     string
	Profile  string
	Menu     string
	Back     string
}

var (
	nerdIcons = Icons{
		Artist:   "\uf130 ", // nf-fa-microphone
		Playlist: "󰲸 ",      // nf-md-playlist_music
		Song:     "\uf001 ", // nf-fa-music
		User:     "\uf007 ", // nf-fa-user
		Profile:  "\uf2bd",  // nf-fa-user_circle
		Menu:     "\uf142",  // nf-fa-ellipsis_v
		Back:     "\uf060 ", // nf-fa-arrow_left
	}

	unicodeIcons = Icons{
		Artist:   "🎤 ",
		Playlist: "📋 ",
		Song:     "🎵 ",
		User:     "👤 ",
		Profile:  "👤",
		Menu:     "⋮",
		Back:     "← ",
	}

	noneIcons = Icons{
		Artist:   "",
		Playlist: "",
		Song:     "",
		User:     "@",
		Profile:  "[me]",
		Menu:     "...",
		Back:     "< ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string {
	return current.Artist + name
}

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// FormatSong formats a song name with the appropriate icon.
func FormatSong(name string) string {
	return current.Song + name
}

// FormatUser formats a username. The "none" style uses an @ prefix.
func FormatUser(name string) string {
	return current.User + name
}

// Profile returns the header bar profile button.
func Profile() string {
	return current.Profile
}

// Menu returns the row menu indicator.
func Menu() string {
	return current.Menu
}

// Back returns the back navigation prefix.
func Back() string {
	return current.Back
}
