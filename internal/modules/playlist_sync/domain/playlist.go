package domain

// PlaylistRef identifies the curated playlist.
type PlaylistRef struct {
	Owner string
	ID    string
}

// WebURL returns the public web link of the playlist.
func (p PlaylistRef) WebURL() string {
	return "https://open.spotify.com/playlist/" + p.ID
}

// PlaylistEntry pairs a track identifier with its zero-based position.
// TrackID is empty for items without an identifier (local or removed tracks).
type PlaylistEntry struct {
	TrackID  TrackID
	Position int
}

// Snapshot is the ordered playlist contents as read at one point in time.
type Snapshot struct {
	entries []PlaylistEntry
	partial bool
}

// NewSnapshot creates a Snapshot from track identifiers in playlist order.
// Positions are assigned densely starting at 0.
func NewSnapshot(trackIDs []TrackID, partial bool) *Snapshot {
	entries := make([]PlaylistEntry, len(trackIDs))
	for i, id := range trackIDs {
		entries[i] = PlaylistEntry{TrackID: id, Position: i}
	}
	return &Snapshot{
		entries: entries,
		partial: partial,
	}
}

// Entries returns a copy of the snapshot entries.
func (s *Snapshot) Entries() []PlaylistEntry {
	result := make([]PlaylistEntry, len(s.entries))
	copy(result, s.entries)
	return result
}

// Len returns the number of entries in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// IsPartial reports whether the fetch stopped before covering the whole playlist.
func (s *Snapshot) IsPartial() bool {
	return s.partial
}

// Find returns the position of the first entry matching the reference.
// Entries without an identifier never match.
func (s *Snapshot) Find(ref TrackReference) (int, bool) {
	if ref.ID == "" {
		return 0, false
	}
	for _, entry := range s.entries {
		if entry.TrackID != "" && entry.TrackID == ref.ID {
			return entry.Position, true
		}
	}
	return 0, false
}
