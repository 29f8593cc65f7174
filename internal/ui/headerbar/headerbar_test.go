package headerbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/encore/internal/nav"
	"github.com/llehouerou/encore/internal/ui/testutil"
)

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render(Props{}, 10))
}

func TestRender_Crumbs(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"home", "/", "Home"},
		{"artist", "/artist/Queen", "Artist Queen"},
		{"playlist", "/playlist/Road Trip", "Playlist Road Trip"},
		{"user", "/user/testUser", "User @testUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := testutil.StripANSI(Render(Props{Route: nav.Parse(tt.path), Username: "guest"}, 80))
			assert.Contains(t, out, tt.expected)
			assert.Contains(t, out, "encore")
		})
	}
}

func TestRender_FillsWidth(t *testing.T) {
	out := Render(Props{Route: nav.Parse("/"), Username: "testUser", CanGoBack: true}, 60)
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, testutil.StripANSI(out), "< Home")
}

func TestRender_LongCrumbTruncated(t *testing.T) {
	p := Props{
		Route:    nav.Parse("/playlist/An Extraordinarily Long Playlist Name For Testing"),
		Username: "testUser",
	}
	out := Render(p, 40)
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Contains(t, testutil.StripANSI(out), "testUser")
}

func TestHitProfile(t *testing.T) {
	x, w := ProfileButton(80, "testUser")
	assert.Equal(t, 80-w, x)

	assert.True(t, HitProfile(x, 0, 80, "testUser"))
	assert.True(t, HitProfile(79, 0, 80, "testUser"))
	assert.False(t, HitProfile(x-1, 0, 80, "testUser"))
	assert.False(t, HitProfile(79, 1, 80, "testUser"))
}
