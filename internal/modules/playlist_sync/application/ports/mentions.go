package ports

import (
	"context"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// MentionPublisher enqueues inbound mentions for processing.
type MentionPublisher interface {
	Publish(mention domain.Mention) error
}

// MentionSubscriber registers the handler that processes queued mentions.
// Mentions are delivered one at a time in arrival order.
type MentionSubscriber interface {
	Subscribe(handler func(context.Context, domain.Mention)) error
}
