// Package nav builds navigation targets and dispatches view transitions.
package nav

import "strings"

// Dispatcher performs a view transition to path. It is fire-and-forget:
// callers never inspect the outcome.
type Dispatcher interface {
	Navigate(path string)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(path string)

// Navigate calls f(path).
func (f DispatcherFunc) Navigate(path string) { f(path) }

// Path segments for entity pages.
const (
	SegmentArtist   = "artist"
	SegmentUser     = "user"
	SegmentPlaylist = "playlist"
)

// Path builds "/<segment>/<id>". Neither part is escaped or validated;
// an empty id yields a trailing slash.
func Path(segment, id string) string {
	return "/" + segment + "/" + id
}

// ArtistPath returns the page of the artist called name.
func ArtistPath(name string) string { return Path(SegmentArtist, name) }

// UserPath returns the page of the user called owner.
func UserPath(owner string) string { return Path(SegmentUser, owner) }

// PlaylistPath returns the page of the playlist called name.
func PlaylistPath(name string) string { return Path(SegmentPlaylist, name) }

// ProfilePath returns the profile page of the signed-in user. The role is
// used verbatim as the segment ("user", "artist", ...).
func ProfilePath(role, username string) string { return Path(role, username) }

// Kind identifies the page a path points to.
type Kind int

const (
	KindUnknown Kind = iota
	KindHome
	KindArtist
	KindUser
	KindPlaylist
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindArtist:
		return "artist"
	case KindUser:
		return "user"
	case KindPlaylist:
		return "playlist"
	case KindUnknown:
	}
	return "unknown"
}

// Route is a parsed navigation target.
type Route struct {
	Kind    Kind
	Segment string
	ID      string
}

// Parse splits a path into its segment and identifier. The identifier is
// everything after the second slash, so names containing "/" survive.
func Parse(path string) Route {
	if path == "" || path == "/" {
		return Route{Kind: KindHome}
	}
	rest, ok := strings.CutPrefix(path, "/")
	if !ok {
		return Route{Kind: KindUnknown}
	}
	segment, id, ok := strings.Cut(rest, "/")
	if !ok {
		return Route{Kind: KindUnknown, Segment: segment}
	}
	r := Route{Segment: segment, ID: id}
	switch segment {
	case SegmentArtist:
		r.Kind = KindArtist
	case SegmentUser:
		r.Kind = KindUser
	case SegmentPlaylist:
		r.Kind = KindPlaylist
	default:
		r.Kind = KindUnknown
	}
	return r
}

// Path returns the route's path form.
func (r Route) Path() string {
	if r.Kind == KindHome {
		return "/"
	}
	return Path(r.Segment, r.ID)
}
