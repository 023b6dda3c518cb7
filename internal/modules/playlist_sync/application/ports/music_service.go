package ports

import (
	"context"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// PlaylistPage is one page of playlist items.
type PlaylistPage struct {
	// TrackIDs holds one entry per item in playlist order; items without
	// an identifier are represented by an empty TrackID.
	TrackIDs []domain.TrackID
	// Total is the total number of items in the playlist as reported by the service.
	Total int
}

// MusicService defines the music service operations used to curate a playlist.
// Every call takes the credential to authorize with.
type MusicService interface {
	// PlaylistTracks returns the items of the playlist starting at offset.
	PlaylistTracks(
		ctx context.Context,
		cred domain.Credential,
		playlist domain.PlaylistRef,
		offset, limit int,
	) (*PlaylistPage, error)

	// ReorderTracks moves rangeLength items starting at rangeStart before insertBefore.
	ReorderTracks(
		ctx context.Context,
		cred domain.Credential,
		playlist domain.PlaylistRef,
		rangeStart, rangeLength, insertBefore int,
	) error

	// InsertTracks inserts the tracks at the given position.
	InsertTracks(
		ctx context.Context,
		cred domain.Credential,
		playlist domain.PlaylistRef,
		position int,
		ids ...domain.TrackID,
	) error
}
