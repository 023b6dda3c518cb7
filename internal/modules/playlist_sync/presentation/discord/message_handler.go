package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// MessageHandler turns chat messages that reference a track into queued mentions.
type MessageHandler struct {
	botID     snowflake.ID
	publisher ports.MentionPublisher
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(botID snowflake.ID, publisher ports.MentionPublisher) *MessageHandler {
	return &MessageHandler{
		botID:     botID,
		publisher: publisher,
	}
}

// HandleMessageCreate is the discordgo event handler for MessageCreate events.
func (h *MessageHandler) HandleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == h.botID.String() {
		return
	}

	// Chatter without a track link never reaches the queue.
	if _, ok := domain.ExtractTrackReference(m.Content); !ok {
		return
	}

	channelID, err := snowflake.Parse(m.ChannelID)
	if err != nil {
		slog.Error("failed to parse channel ID in message", "error", err)
		return
	}
	messageID, err := snowflake.Parse(m.ID)
	if err != nil {
		slog.Error("failed to parse message ID", "channel", channelID, "error", err)
		return
	}
	authorID, err := snowflake.Parse(m.Author.ID)
	if err != nil {
		slog.Error("failed to parse author ID in message", "channel", channelID, "error", err)
		return
	}

	// Drops are logged by the queue.
	_ = h.publisher.Publish(domain.NewMention(channelID, messageID, authorID, m.Content))
}
