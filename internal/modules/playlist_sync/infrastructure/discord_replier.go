package infrastructure

import (
	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
)

// Compile-time check that DiscordReplier implements Replier.
var _ ports.Replier = (*DiscordReplier)(nil)

// DiscordReplier sends replies to Discord messages.
type DiscordReplier struct {
	session *discordgo.Session
}

// NewDiscordReplier creates a new DiscordReplier.
func NewDiscordReplier(session *discordgo.Session) *DiscordReplier {
	return &DiscordReplier{
		session: session,
	}
}

// Reply sends content as a reply referencing the given message.
func (r *DiscordReplier) Reply(channelID, messageID snowflake.ID, content string) error {
	_, err := r.session.ChannelMessageSendReply(
		channelID.String(),
		content,
		&discordgo.MessageReference{
			MessageID: messageID.String(),
			ChannelID: channelID.String(),
		},
	)
	return err
}
