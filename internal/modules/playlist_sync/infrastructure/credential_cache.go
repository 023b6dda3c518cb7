package infrastructure

import (
	"sync"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// CredentialCache is an in-memory implementation of CredentialStore.
// Readers copy the value out; the lock is never held across a network call.
type CredentialCache struct {
	mu   sync.RWMutex
	cred domain.Credential
}

// NewCredentialCache creates a new, empty CredentialCache.
func NewCredentialCache() *CredentialCache {
	return &CredentialCache{}
}

// Current returns the latest stored credential, or the zero value before the first Store.
func (c *CredentialCache) Current() domain.Credential {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cred
}

// Store replaces the stored credential.
func (c *CredentialCache) Store(cred domain.Credential) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cred = cred
}

// Ensure CredentialCache implements CredentialStore.
var _ ports.CredentialStore = (*CredentialCache)(nil)
