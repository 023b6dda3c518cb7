package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

var (
	testPlaylist = domain.PlaylistRef{Owner: "owner", ID: "playlist"}
	testExpiry   = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
)

type pageRequest struct {
	offset int
	limit  int
	cred   domain.Credential
}

type reorderCall struct {
	rangeStart   int
	rangeLength  int
	insertBefore int
	cred         domain.Credential
}

type insertCall struct {
	position int
	ids      []domain.TrackID
	cred     domain.Credential
}

// mockMusicService serves a fixed playlist and records mutations.
type mockMusicService struct {
	tracks []domain.TrackID
	// failAtOffset makes the page starting at that offset fail when >= 0.
	failAtOffset int
	// reportedTotal overrides the total returned with each page when > 0.
	reportedTotal int

	reorderErr error
	insertErr  error

	pageRequests []pageRequest
	reorders     []reorderCall
	inserts      []insertCall
}

func newMockMusicService(tracks ...domain.TrackID) *mockMusicService {
	return &mockMusicService{
		tracks:       tracks,
		failAtOffset: -1,
	}
}

var errPageFailed = errors.New("page failed")

func (m *mockMusicService) PlaylistTracks(
	_ context.Context,
	cred domain.Credential,
	_ domain.PlaylistRef,
	offset, limit int,
) (*ports.PlaylistPage, error) {
	m.pageRequests = append(m.pageRequests, pageRequest{offset: offset, limit: limit, cred: cred})

	if m.failAtOffset >= 0 && offset == m.failAtOffset {
		return nil, errPageFailed
	}

	total := len(m.tracks)
	if m.reportedTotal > 0 {
		total = m.reportedTotal
	}

	end := min(offset+limit, len(m.tracks))
	var ids []domain.TrackID
	if offset < end {
		ids = append(ids, m.tracks[offset:end]...)
	}

	return &ports.PlaylistPage{TrackIDs: ids, Total: total}, nil
}

func (m *mockMusicService) ReorderTracks(
	_ context.Context,
	cred domain.Credential,
	_ domain.PlaylistRef,
	rangeStart, rangeLength, insertBefore int,
) error {
	m.reorders = append(m.reorders, reorderCall{
		rangeStart:   rangeStart,
		rangeLength:  rangeLength,
		insertBefore: insertBefore,
		cred:         cred,
	})
	if m.reorderErr != nil {
		return m.reorderErr
	}

	moved := m.tracks[rangeStart : rangeStart+rangeLength]
	rest := append([]domain.TrackID{}, m.tracks[:rangeStart]...)
	rest = append(rest, m.tracks[rangeStart+rangeLength:]...)
	m.tracks = append(append(append([]domain.TrackID{}, rest[:insertBefore]...), moved...), rest[insertBefore:]...)
	return nil
}

func (m *mockMusicService) InsertTracks(
	_ context.Context,
	cred domain.Credential,
	_ domain.PlaylistRef,
	position int,
	ids ...domain.TrackID,
) error {
	m.inserts = append(m.inserts, insertCall{position: position, ids: ids, cred: cred})
	if m.insertErr != nil {
		return m.insertErr
	}

	tracks := append([]domain.TrackID{}, m.tracks[:position]...)
	tracks = append(tracks, ids...)
	m.tracks = append(tracks, m.tracks[position:]...)
	return nil
}

func (m *mockMusicService) mutationCount() int {
	return len(m.reorders) + len(m.inserts)
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

type mockRefresher struct {
	cred  domain.Credential
	err   error
	calls int
}

func (m *mockRefresher) Refresh(_ context.Context) (domain.Credential, error) {
	m.calls++
	if m.err != nil {
		return domain.Credential{}, m.err
	}
	return m.cred, nil
}

func trackIDs(prefix string, n int) []domain.TrackID {
	ids := make([]domain.TrackID, n)
	for i := range ids {
		ids[i] = domain.TrackID(fmt.Sprintf("%s%03d", prefix, i))
	}
	return ids
}
