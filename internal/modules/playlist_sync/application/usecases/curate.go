package usecases

import (
	"context"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// CurateInput contains the input for the Curate use case.
type CurateInput struct {
	Text string
}

// CurateOutput contains the result of the Curate use case.
type CurateOutput struct {
	Reference domain.TrackReference
	Outcome   domain.SyncOutcome
	// Partial is set when the outcome was decided on an incomplete playlist read.
	Partial bool
}

// CurateService runs the full pipeline for one message:
// extract a reference, read the playlist, and apply the sync policy.
type CurateService struct {
	playlist    domain.PlaylistRef
	credentials ports.CredentialStore
	index       *PlaylistIndexService
	sync        *SyncService
}

// NewCurateService creates a new CurateService.
func NewCurateService(
	playlist domain.PlaylistRef,
	credentials ports.CredentialStore,
	index *PlaylistIndexService,
	sync *SyncService,
) *CurateService {
	return &CurateService{
		playlist:    playlist,
		credentials: credentials,
		index:       index,
		sync:        sync,
	}
}

// Playlist returns the curated playlist.
func (s *CurateService) Playlist() domain.PlaylistRef {
	return s.playlist
}

// Curate synchronizes the playlist with the track referenced in the input text.
// Returns ErrNoTrackReference when the text references no track.
func (s *CurateService) Curate(ctx context.Context, input CurateInput) (*CurateOutput, error) {
	ref, ok := domain.ExtractTrackReference(input.Text)
	if !ok {
		return nil, ErrNoTrackReference
	}

	// One credential copy serves the whole pipeline; the store is never held across calls.
	cred := s.credentials.Current()

	snapshot := s.index.FetchAll(ctx, s.playlist, cred)

	outcome, err := s.sync.Apply(ctx, s.playlist, ref, snapshot, cred)
	if err != nil {
		return nil, err
	}

	return &CurateOutput{
		Reference: ref,
		Outcome:   outcome,
		Partial:   snapshot.IsPartial(),
	}, nil
}
