// Package catalog holds the artists, songs and playlists the client browses.
//
// The catalog lives in memory. It is loaded once from TOML and song edits
// are lost on exit.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	ErrPlaylistNotFound      = errors.New("playlist not found")
	ErrSongNotFound          = errors.New("song not found")
	ErrArtistNotFound        = errors.New("artist not found")
	ErrNotOwner              = errors.New("not the playlist owner")
	ErrSongAlreadyInPlaylist = errors.New("song already in playlist")
)

// Artist is a performer with an optional photo URL.
type Artist struct {
	Name  string
	Photo string
}

// Song is a single track.
type Song struct {
	Name     string
	Artist   string
	Duration time.Duration
}

// Playlist is an owned, ordered list of song names.
type Playlist struct {
	Name        string
	Photo       string
	Description string
	Owner       string
	CreatedAt   time.Time
	Songs       []string
}

// Catalog is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	artists   []Artist
	songs     map[string]Song
	playlists []*Playlist
}

// New builds a catalog. Playlists referencing unknown songs keep the names;
// SongsOf skips them.
func New(artists []Artist, songs []Song, playlists []Playlist) *Catalog {
	c := &Catalog{
		artists: slices.Clone(artists),
		songs:   make(map[string]Song, len(songs)),
	}
	for _, s := range songs {
		c.songs[s.Name] = s
	}
	for _, p := range playlists {
		p.Songs = slices.Clone(p.Songs)
		c.playlists = append(c.playlists, &p)
	}
	return c
}

// Artists returns all artists in catalog order.
func (c *Catalog) Artists() []Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.artists)
}

// Artist returns the artist with the given name.
func (c *Catalog) Artist(name string) (Artist, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.artists {
		if a.Name == name {
			return a, nil
		}
	}
	return Artist{}, fmt.Errorf("%w: %s", ErrArtistNotFound, name)
}

// Playlists returns copies of all playlists in catalog order.
func (c *Catalog) Playlists() []Playlist {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Playlist, 0, len(c.playlists))
	for _, p := range c.playlists {
		out = append(out, copyPlaylist(p))
	}
	return out
}

// Playlist returns a copy of the named playlist.
func (c *Catalog) Playlist(name string) (Playlist, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p := c.find(name)
	if p == nil {
		return Playlist{}, fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	return copyPlaylist(p), nil
}

// SongsOf returns the known songs of a playlist in order.
func (c *Catalog) SongsOf(name string) ([]Song, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p := c.find(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	songs := make([]Song, 0, len(p.Songs))
	for _, n := range p.Songs {
		if s, ok := c.songs[n]; ok {
			songs = append(songs, s)
		}
	}
	return songs, nil
}

// SongsBy returns the songs of an artist sorted by name.
func (c *Catalog) SongsBy(artist string) []Song {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var songs []Song
	for _, s := range c.songs {
		if s.Artist == artist {
			songs = append(songs, s)
		}
	}
	slices.SortFunc(songs, func(a, b Song) int { return strings.Compare(a.Name, b.Name) })
	return songs
}

// PlaylistsOwnedBy returns the names of owner's playlists in catalog order.
func (c *Catalog) PlaylistsOwnedBy(ctx context.Context, owner string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var names []string
	for _, p := range c.playlists {
		if p.Owner == owner {
			names = append(names, p.Name)
		}
	}
	return names, nil
}

// AddSong appends song to playlist. Only the owner may edit a playlist.
func (c *Catalog) AddSong(ctx context.Context, user, playlist, song string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.editable(user, playlist)
	if err != nil {
		return err
	}
	if _, ok := c.songs[song]; !ok {
		return fmt.Errorf("%w: %s", ErrSongNotFound, song)
	}
	if slices.Contains(p.Songs, song) {
		return fmt.Errorf("%w: %s", ErrSongAlreadyInPlaylist, song)
	}
	p.Songs = append(p.Songs, song)
	return nil
}

// RemoveSong removes song from playlist. Only the owner may edit a playlist.
func (c *Catalog) RemoveSong(ctx context.Context, user, playlist, song string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.editable(user, playlist)
	if err != nil {
		return err
	}
	i := slices.Index(p.Songs, song)
	if i < 0 {
		return fmt.Errorf("%w: %s in %s", ErrSongNotFound, song, playlist)
	}
	p.Songs = slices.Delete(p.Songs, i, i+1)
	return nil
}

func (c *Catalog) editable(user, playlist string) (*Playlist, error) {
	p := c.find(playlist)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlaylistNotFound, playlist)
	}
	if p.Owner != user {
		return nil, fmt.Errorf("%w: %s", ErrNotOwner, playlist)
	}
	return p, nil
}

func (c *Catalog) find(name string) *Playlist {
	for _, p := range c.playlists {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func copyPlaylist(p *Playlist) Playlist {
	out := *p
	out.Songs = slices.Clone(p.Songs)
	return out
}

// TotalDuration sums the durations of songs.
func TotalDuration(songs []Song) time.Duration {
	var total time.Duration
	for _, s := range songs {
		total += s.Duration
	}
	return total
}
