package portfolio

import "strings"

// FilterByTrack returns the projects whose category equals track, in their
// original order. TrackAll returns every project. The input is never modified
// and the result never shares its backing array.
func FilterByTrack(projects []Project, track Track) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if track == TrackAll || Track(p.Category) == track {
			out = append(out, p)
		}
	}
	return out
}

// Tracks lists TrackAll followed by each category present in projects,
// in first-seen order.
func Tracks(projects []Project) []Track {
	tracks := []Track{TrackAll}
	seen := make(map[Category]bool)
	for _, p := range projects {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		tracks = append(tracks, Track(p.Category))
	}
	return tracks
}

// ParseTrack normalizes a user-supplied track. An empty value yields def.
// Unknown values are returned as-is and simply match nothing.
func ParseTrack(s string, def Track) Track {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return def
	}
	return Track(s)
}

// Valid reports whether t is TrackAll or one of the known categories.
func (t Track) Valid() bool {
	switch Category(t) {
	case Category(TrackAll), CategoryGPU, CategoryArch, CategoryRTL, CategoryEmbedded:
		return true
	}
	return false
}

// Slug is the lower-case path segment used for exported track pages.
func (t Track) Slug() string {
	return strings.ToLower(string(t))
}
