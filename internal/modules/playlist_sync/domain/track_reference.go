package domain

import "regexp"

// TrackID is a normalized music service track identifier.
type TrackID string

// TrackReference is a track identifier extracted from chat text.
type TrackReference struct {
	ID TrackID
}

// trackPattern matches web links (open./play. hosts) and native track URIs.
// The identifier is the rest of the line, minus any query string.
var trackPattern = regexp.MustCompile(
	`(?im)(?:https?://(?:open|play)\.spotify\.com/track/|spotify:track:)(.*?)(?:\?.*?)?$`,
)

// ExtractTrackReference returns the first track reference found in text.
// It returns false when no recognized link or URI carries a non-empty identifier.
func ExtractTrackReference(text string) (TrackReference, bool) {
	for _, match := range trackPattern.FindAllStringSubmatch(text, -1) {
		if id := match[1]; id != "" {
			return TrackReference{ID: TrackID(id)}, true
		}
	}
	return TrackReference{}, false
}

// URI returns the native URI of the track.
func (id TrackID) URI() string {
	return "spotify:track:" + string(id)
}

// URI returns the native URI of the referenced track.
func (r TrackReference) URI() string {
	return r.ID.URI()
}
