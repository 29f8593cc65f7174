package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed demo.toml
var demoTOML []byte

type catalogFile struct {
	Artists   []artistEntry   `koanf:"artists"`
	Songs     []songEntry     `koanf:"songs"`
	Playlists []playlistEntry `koanf:"playlists"`
}

type artistEntry struct {
	Name  string `koanf:"name"`
	Photo string `koanf:"photo"`
}

type songEntry struct {
	Name     string `koanf:"name"`
	Artist   string `koanf:"artist"`
	Duration string `koanf:"duration"` // "3m42s" or "3:42"
}

type playlistEntry struct {
	Name        string   `koanf:"name"`
	Photo       string   `koanf:"photo"`
	Description string   `koanf:"description"`
	Owner       string   `koanf:"owner"`
	Created     string   `koanf:"created"` // YYYY-MM-DD
	Songs       []string `koanf:"songs"`
}

// bytesProvider feeds an in-memory document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

func (b bytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("catalog: bytes provider does not support Read()")
}

// Load reads a catalog TOML file.
func Load(path string) (*Catalog, error) {
	return load(file.Provider(path))
}

// Parse reads a catalog from TOML bytes.
func Parse(data []byte) (*Catalog, error) {
	return load(bytesProvider(data))
}

// Demo returns the built-in catalog used when none is configured.
func Demo() *Catalog {
	c, err := Parse(demoTOML)
	if err != nil {
		panic("catalog: invalid built-in demo: " + err.Error())
	}
	return c
}

func load(p koanf.Provider) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(p, toml.Parser()); err != nil {
		return nil, err
	}

	var f catalogFile
	if err := k.Unmarshal("", &f); err != nil {
		return nil, err
	}

	artists := make([]Artist, 0, len(f.Artists))
	for _, a := range f.Artists {
		artists = append(artists, Artist{Name: a.Name, Photo: normalizePhoto(a.Photo)})
	}

	songs := make([]Song, 0, len(f.Songs))
	for _, s := range f.Songs {
		d, err := parseDuration(s.Duration)
		if err != nil {
			return nil, fmt.Errorf("song %q: %w", s.Name, err)
		}
		songs = append(songs, Song{Name: s.Name, Artist: s.Artist, Duration: d})
	}

	playlists := make([]Playlist, 0, len(f.Playlists))
	for _, p := range f.Playlists {
		var created time.Time
		if p.Created != "" {
			t, err := time.Parse(time.DateOnly, p.Created)
			if err != nil {
				return nil, fmt.Errorf("playlist %q: created: %w", p.Name, err)
			}
			created = t
		}
		playlists = append(playlists, Playlist{
			Name:        p.Name,
			Photo:       normalizePhoto(p.Photo),
			Description: p.Description,
			Owner:       p.Owner,
			CreatedAt:   created,
			Songs:       p.Songs,
		})
	}

	return New(artists, songs, playlists), nil
}

// normalizePhoto keeps only remote photo URLs. Anything else falls back to
// the default thumbnail.
func normalizePhoto(photo string) string {
	photo = strings.TrimSpace(photo)
	if !strings.HasPrefix(photo, "http://") && !strings.HasPrefix(photo, "https://") {
		return ""
	}
	return photo
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var m, sec int
	if n, err := fmt.Sscanf(s, "%d:%d", &m, &sec); err == nil && n == 2 && sec < 60 {
		return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
	}
	return 0, fmt.Errorf("invalid duration %q", s)
}
