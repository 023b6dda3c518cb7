package domain

import "testing"

func TestNewSnapshot_AssignsDensePositions(t *testing.T) {
	snapshot := NewSnapshot([]TrackID{"a", "", "c"}, false)

	entries := snapshot.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, entry := range entries {
		if entry.Position != i {
			t.Errorf("entry %d: expected position %d, got %d", i, i, entry.Position)
		}
	}
	if snapshot.IsPartial() {
		t.Error("expected complete snapshot")
	}
}

func TestSnapshot_EntriesReturnsCopy(t *testing.T) {
	snapshot := NewSnapshot([]TrackID{"a"}, false)

	entries := snapshot.Entries()
	entries[0].TrackID = "changed"

	if snapshot.Entries()[0].TrackID != "a" {
		t.Error("expected snapshot to be unaffected by modification of returned entries")
	}
}

func TestSnapshot_Find(t *testing.T) {
	tests := []struct {
		name         string
		ids          []TrackID
		ref          TrackReference
		wantPosition int
		wantFound    bool
	}{
		{
			name:      "empty playlist",
			ids:       nil,
			ref:       TrackReference{ID: "abc"},
			wantFound: false,
		},
		{
			name:         "found at top",
			ids:          []TrackID{"abc", "def"},
			ref:          TrackReference{ID: "abc"},
			wantPosition: 0,
			wantFound:    true,
		},
		{
			name:         "found further down",
			ids:          []TrackID{"def", "ghi", "abc"},
			ref:          TrackReference{ID: "abc"},
			wantPosition: 2,
			wantFound:    true,
		},
		{
			name:         "first duplicate wins",
			ids:          []TrackID{"def", "abc", "abc"},
			ref:          TrackReference{ID: "abc"},
			wantPosition: 1,
			wantFound:    true,
		},
		{
			name:      "comparison is exact",
			ids:       []TrackID{"ABC"},
			ref:       TrackReference{ID: "abc"},
			wantFound: false,
		},
		{
			name:         "entries without identifier are skipped",
			ids:          []TrackID{"", "abc"},
			ref:          TrackReference{ID: "abc"},
			wantPosition: 1,
			wantFound:    true,
		},
		{
			name:      "empty reference never matches",
			ids:       []TrackID{"", "abc"},
			ref:       TrackReference{},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := NewSnapshot(tt.ids, false)

			position, found := snapshot.Find(tt.ref)

			if found != tt.wantFound {
				t.Fatalf("expected found %v, got %v", tt.wantFound, found)
			}
			if found && position != tt.wantPosition {
				t.Errorf("expected position %d, got %d", tt.wantPosition, position)
			}
		})
	}
}

func TestPlaylistRef_WebURL(t *testing.T) {
	ref := PlaylistRef{Owner: "owner", ID: "37i9dQZF1DXcBWIGoYBM5M"}

	want := "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M"
	if ref.WebURL() != want {
		t.Errorf("expected %q, got %q", want, ref.WebURL())
	}
}
