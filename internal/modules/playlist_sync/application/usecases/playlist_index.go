package usecases

import (
	"context"
	"log/slog"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// PlaylistPageSize is the number of items requested per playlist page.
const PlaylistPageSize = 100

// PlaylistIndexService reads the complete contents of a playlist.
type PlaylistIndexService struct {
	music    ports.MusicService
	pageSize int
}

// NewPlaylistIndexService creates a new PlaylistIndexService.
func NewPlaylistIndexService(music ports.MusicService) *PlaylistIndexService {
	return &PlaylistIndexService{
		music:    music,
		pageSize: PlaylistPageSize,
	}
}

// FetchAll reads the playlist page by page until the reported total is covered.
// A failing page ends the fetch: the entries accumulated so far are returned as a
// partial snapshot and the failure is only logged. Pages are not retried.
func (s *PlaylistIndexService) FetchAll(
	ctx context.Context,
	playlist domain.PlaylistRef,
	cred domain.Credential,
) *domain.Snapshot {
	var ids []domain.TrackID
	offset := 0

	for {
		page, err := s.music.PlaylistTracks(ctx, cred, playlist, offset, s.pageSize)
		if err != nil {
			slog.Warn(
				"failed to fetch playlist page, continuing with partial contents",
				"playlist", playlist.ID,
				"offset", offset,
				"fetched", len(ids),
				"error", err,
			)
			return domain.NewSnapshot(ids, true)
		}

		ids = append(ids, page.TrackIDs...)

		if page.Total <= offset+s.pageSize || len(page.TrackIDs) == 0 {
			break
		}
		offset += s.pageSize
	}

	slog.Debug("fetched playlist", "playlist", playlist.ID, "count", len(ids))

	return domain.NewSnapshot(ids, false)
}
