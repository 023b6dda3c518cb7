package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/usecases"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

var testPlaylist = domain.PlaylistRef{Owner: "owner", ID: "playlist"}

type mockMusicService struct {
	tracks     []domain.TrackID
	insertErr  error
	reorderErr error
	inserts    int
	reorders   int
}

func (m *mockMusicService) PlaylistTracks(
	_ context.Context,
	_ domain.Credential,
	_ domain.PlaylistRef,
	offset, limit int,
) (*ports.PlaylistPage, error) {
	end := min(offset+limit, len(m.tracks))
	var ids []domain.TrackID
	if offset < end {
		ids = m.tracks[offset:end]
	}
	return &ports.PlaylistPage{TrackIDs: ids, Total: len(m.tracks)}, nil
}

func (m *mockMusicService) ReorderTracks(
	_ context.Context,
	_ domain.Credential,
	_ domain.PlaylistRef,
	_, _, _ int,
) error {
	m.reorders++
	return m.reorderErr
}

func (m *mockMusicService) InsertTracks(
	_ context.Context,
	_ domain.Credential,
	_ domain.PlaylistRef,
	_ int,
	_ ...domain.TrackID,
) error {
	m.inserts++
	return m.insertErr
}

type mockCredentialStore struct {
	mu   sync.Mutex
	cred domain.Credential
}

func (m *mockCredentialStore) Current() domain.Credential {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cred
}

func (m *mockCredentialStore) Store(cred domain.Credential) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = cred
}

// mockRefresher returns results in sequence; the last result repeats.
type mockRefresher struct {
	mu      sync.Mutex
	results []refreshResult
	calls   int
}

type refreshResult struct {
	cred  domain.Credential
	err   error
	panic bool
}

var errRefresh = errors.New("invalid_grant")

func (m *mockRefresher) Refresh(_ context.Context) (domain.Credential, error) {
	m.mu.Lock()
	idx := min(m.calls, len(m.results)-1)
	m.calls++
	result := m.results[idx]
	m.mu.Unlock()

	if result.panic {
		panic("refresher exploded")
	}
	return result.cred, result.err
}

func (m *mockRefresher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type reply struct {
	channelID snowflake.ID
	messageID snowflake.ID
	content   string
}

type mockReplier struct {
	replies []reply
	err     error
}

func (m *mockReplier) Reply(channelID, messageID snowflake.ID, content string) error {
	m.replies = append(m.replies, reply{channelID: channelID, messageID: messageID, content: content})
	return m.err
}

type mockSubscriber struct {
	handler func(context.Context, domain.Mention)
	err     error
}

func (m *mockSubscriber) Subscribe(handler func(context.Context, domain.Mention)) error {
	if m.err != nil {
		return m.err
	}
	m.handler = handler
	return nil
}

func newCredential(token string) domain.Credential {
	return domain.NewCredential(token, "Bearer", time.Now().Add(time.Hour))
}

func newCurateService(music *mockMusicService) *usecases.CurateService {
	return usecases.NewCurateService(
		testPlaylist,
		&mockCredentialStore{cred: newCredential("token")},
		usecases.NewPlaylistIndexService(music),
		usecases.NewSyncService(music),
	)
}

// waitFor polls cond until it holds or the timeout expires.
func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}
