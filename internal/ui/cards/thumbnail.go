package cards

import (
	_ "embed"
	"strings"

	"github.com/llehouerou/encore/internal/ui/render"
)

//go:embed default_thumbnail.txt
var defaultThumbnail string

// DefaultThumbnail is shown for entities without a photo.
var DefaultThumbnail = strings.TrimRight(defaultThumbnail, "\n")

// Thumbnail resolves a photo reference. Empty photos resolve to
// DefaultThumbnail; anything else is returned unchanged.
func Thumbnail(photo string) string {
	if photo == "" {
		return DefaultThumbnail
	}
	return photo
}

// thumbnailLines renders the resolved thumbnail into exactly height lines of
// width columns. Photo URLs are not fetched; the source is shown instead.
func thumbnailLines(photo string, width, height int) []string {
	var src []string
	if t := Thumbnail(photo); t == DefaultThumbnail {
		src = strings.Split(t, "\n")
	} else {
		src = []string{"", "  [photo]", "  " + t}
	}

	lines := make([]string, height)
	for i := range lines {
		var s string
		if i < len(src) {
			s = src[i]
		}
		lines[i] = render.Fit(s, width)
	}
	return lines
}
