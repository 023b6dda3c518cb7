package usecases

import (
	"context"
	"fmt"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// CredentialService refreshes the shared music service credential.
type CredentialService struct {
	refresher ports.CredentialRefresher
	store     ports.CredentialStore
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(
	refresher ports.CredentialRefresher,
	store ports.CredentialStore,
) *CredentialService {
	return &CredentialService{
		refresher: refresher,
		store:     store,
	}
}

// Refresh obtains a new credential and stores it.
// On failure the stored credential is left untouched.
func (s *CredentialService) Refresh(ctx context.Context) (domain.Credential, error) {
	cred, err := s.refresher.Refresh(ctx)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%w: %w", ErrCredentialRefreshFailed, err)
	}
	if cred.IsZero() {
		return domain.Credential{}, fmt.Errorf("%w: %w", ErrCredentialRefreshFailed, ErrEmptyCredential)
	}

	s.store.Store(cred)

	return cred, nil
}

// Current returns the stored credential.
func (s *CredentialService) Current() domain.Credential {
	return s.store.Current()
}
