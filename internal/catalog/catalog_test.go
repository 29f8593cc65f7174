package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog() *Catalog {
	return New(
		[]Artist{{Name: "Test Artist"}},
		[]Song{
			{Name: "one", Artist: "Test Artist", Duration: time.Minute},
			{Name: "two", Artist: "Test Artist", Duration: 2 * time.Minute},
			{Name: "three", Artist: "Other", Duration: 3 * time.Minute},
		},
		[]Playlist{
			{Name: "mine", Owner: "testUser", Songs: []string{"one", "ghost"}},
			{Name: "theirs", Owner: "someoneElse", Songs: []string{"two"}},
			{Name: "also mine", Owner: "testUser"},
		},
	)
}

func TestPlaylist_ReturnsCopy(t *testing.T) {
	c := newTestCatalog()

	p, err := c.Playlist("mine")
	require.NoError(t, err)
	p.Songs[0] = "mutated"

	again, err := c.Playlist("mine")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "ghost"}, again.Songs)
}

func TestPlaylist_NotFound(t *testing.T) {
	_, err := newTestCatalog().Playlist("nope")
	require.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestSongsOf_SkipsUnknownSongs(t *testing.T) {
	songs, err := newTestCatalog().SongsOf("mine")
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, "one", songs[0].Name)
}

func TestSongsBy(t *testing.T) {
	songs := newTestCatalog().SongsBy("Test Artist")
	require.Len(t, songs, 2)
	assert.Equal(t, "one", songs[0].Name)
	assert.Equal(t, "two", songs[1].Name)
	assert.Equal(t, 3*time.Minute, TotalDuration(songs))
}

func TestPlaylistsOwnedBy(t *testing.T) {
	names, err := newTestCatalog().PlaylistsOwnedBy(t.Context(), "testUser")
	require.NoError(t, err)
	assert.Equal(t, []string{"mine", "also mine"}, names)
}

func TestAddSong(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		playlist string
		song     string
		wantErr  error
	}{
		{"owner adds known song", "testUser", "mine", "two", nil},
		{"duplicate rejected", "testUser", "mine", "one", ErrSongAlreadyInPlaylist},
		{"unknown song rejected", "testUser", "mine", "nope", ErrSongNotFound},
		{"unknown playlist", "testUser", "nope", "two", ErrPlaylistNotFound},
		{"not the owner", "testUser", "theirs", "one", ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog()
			err := c.AddSong(t.Context(), tt.user, tt.playlist, tt.song)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			p, _ := c.Playlist(tt.playlist)
			assert.Equal(t, tt.song, p.Songs[len(p.Songs)-1])
		})
	}
}

func TestRemoveSong(t *testing.T) {
	c := newTestCatalog()

	require.ErrorIs(t, c.RemoveSong(t.Context(), "testUser", "theirs", "two"), ErrNotOwner)
	require.ErrorIs(t, c.RemoveSong(t.Context(), "testUser", "mine", "two"), ErrSongNotFound)

	require.NoError(t, c.RemoveSong(t.Context(), "testUser", "mine", "one"))
	p, _ := c.Playlist("mine")
	assert.Equal(t, []string{"ghost"}, p.Songs)
}

func TestEdits_HonorCanceledContext(t *testing.T) {
	c := newTestCatalog()
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.ErrorIs(t, c.AddSong(ctx, "testUser", "mine", "two"), context.Canceled)
	require.ErrorIs(t, c.RemoveSong(ctx, "testUser", "mine", "one"), context.Canceled)
	_, err := c.PlaylistsOwnedBy(ctx, "testUser")
	require.ErrorIs(t, err, context.Canceled)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
[[artists]]
name = "Test Artist"
photo = "local.png"

[[songs]]
name = "one"
artist = "Test Artist"
duration = "3:42"

[[songs]]
name = "two"
duration = "1m5s"

[[playlists]]
name = "mine"
owner = "testUser"
photo = "https://example.com/p.jpg"
created = "2025-06-14"
songs = ["one", "two"]
`))
	require.NoError(t, err)

	a, err := c.Artist("Test Artist")
	require.NoError(t, err)
	assert.Empty(t, a.Photo, "non-URL photos fall back to the default thumbnail")

	songs, err := c.SongsOf("mine")
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, 3*time.Minute+42*time.Second, songs[0].Duration)
	assert.Equal(t, 65*time.Second, songs[1].Duration)

	p, err := c.Playlist("mine")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/p.jpg", p.Photo)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), p.CreatedAt)
}

func TestParse_InvalidDuration(t *testing.T) {
	_, err := Parse([]byte(`
[[songs]]
name = "bad"
duration = "forever"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `song "bad"`)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[artists]]\nname = \"Queen\"\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Artists(), 1)
}

func TestDemo(t *testing.T) {
	c := Demo()
	assert.NotEmpty(t, c.Artists())
	owned, err := c.PlaylistsOwnedBy(t.Context(), "guest")
	require.NoError(t, err)
	assert.NotEmpty(t, owned, "guest must own playlists so the song menu is usable")

	for _, p := range c.Playlists() {
		songs, err := c.SongsOf(p.Name)
		require.NoError(t, err)
		assert.Len(t, songs, len(p.Songs), "demo playlist %q references unknown songs", p.Name)
	}
}
