package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/usecases"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// Reply texts sent back to the chat.
const (
	ReplyTrackAdded = "Track added to playlist!"
	ReplyTrackMoved = "Track already in playlist, moved it to the top."
)

// ReplyText returns the chat reply for an outcome.
// Only outcomes that changed the playlist get a reply.
func ReplyText(outcome domain.SyncOutcome) (string, bool) {
	switch outcome.Kind {
	case domain.OutcomeInserted:
		return ReplyTrackAdded, true
	case domain.OutcomeMoved:
		return ReplyTrackMoved, true
	default:
		return "", false
	}
}

// MentionHandler processes queued mentions one at a time and replies with the outcome.
type MentionHandler struct {
	curate     *usecases.CurateService
	replier    ports.Replier
	subscriber ports.MentionSubscriber
}

// NewMentionHandler creates a new MentionHandler.
func NewMentionHandler(
	curate *usecases.CurateService,
	replier ports.Replier,
	subscriber ports.MentionSubscriber,
) *MentionHandler {
	return &MentionHandler{
		curate:     curate,
		replier:    replier,
		subscriber: subscriber,
	}
}

// Start registers the handler with the subscriber.
func (h *MentionHandler) Start() error {
	if err := h.subscriber.Subscribe(h.handleMention); err != nil {
		return err
	}

	slog.Debug("mention handler properly registered")

	return nil
}

func (h *MentionHandler) handleMention(ctx context.Context, mention domain.Mention) {
	output, err := h.curate.Curate(ctx, usecases.CurateInput{Text: mention.Content})
	if errors.Is(err, usecases.ErrNoTrackReference) {
		return
	}
	if err != nil {
		// Failures stay silent in the chat.
		slog.Error(
			"failed to sync mentioned track",
			"mention_id", mention.ID,
			"channel", mention.ChannelID,
			"error", err,
		)
		return
	}

	slog.Info(
		"synced mentioned track",
		"mention_id", mention.ID,
		"track", output.Reference.ID,
		"outcome", output.Outcome.String(),
		"partial_snapshot", output.Partial,
	)

	text, ok := ReplyText(output.Outcome)
	if !ok {
		return
	}

	if err := h.replier.Reply(mention.ChannelID, mention.MessageID, text); err != nil {
		slog.Warn(
			"failed to send reply",
			"mention_id", mention.ID,
			"channel", mention.ChannelID,
			"error", err,
		)
	}
}
