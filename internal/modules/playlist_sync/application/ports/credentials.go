package ports

import (
	"context"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// CredentialStore holds the current music service credential.
type CredentialStore interface {
	// Current returns the latest stored credential without blocking on network work.
	Current() domain.Credential

	// Store atomically replaces the stored credential.
	Store(cred domain.Credential)
}

// CredentialRefresher exchanges the long-lived refresh token for a fresh credential.
type CredentialRefresher interface {
	Refresh(ctx context.Context) (domain.Credential, error)
}
