package usecases

import (
	"context"
	"fmt"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// SyncService applies the deduplicate-or-insert policy to the playlist.
type SyncService struct {
	music ports.MusicService
}

// NewSyncService creates a new SyncService.
func NewSyncService(music ports.MusicService) *SyncService {
	return &SyncService{
		music: music,
	}
}

// Apply moves the referenced track to the top if present, or inserts it at the top.
// At most one mutation is issued; none when the track is already at the top.
func (s *SyncService) Apply(
	ctx context.Context,
	playlist domain.PlaylistRef,
	ref domain.TrackReference,
	snapshot *domain.Snapshot,
	cred domain.Credential,
) (domain.SyncOutcome, error) {
	outcome := domain.Plan(snapshot, ref)

	switch outcome.Kind {
	case domain.OutcomeMoved:
		err := s.music.ReorderTracks(ctx, cred, playlist, outcome.FromPosition, 1, domain.TopPosition)
		if err != nil {
			return outcome, fmt.Errorf("%w: reorder %s from %d: %w",
				ErrMutationFailed, ref.ID, outcome.FromPosition, err)
		}
	case domain.OutcomeInserted:
		err := s.music.InsertTracks(ctx, cred, playlist, domain.TopPosition, ref.ID)
		if err != nil {
			return outcome, fmt.Errorf("%w: insert %s: %w", ErrMutationFailed, ref.ID, err)
		}
	}

	return outcome, nil
}
