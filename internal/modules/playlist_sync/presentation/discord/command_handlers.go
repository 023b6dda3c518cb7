package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/playlistbot/internal/bot"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

const colorSpotify = 0x1DB954

// CommandHandlers holds the slash command handlers.
type CommandHandlers struct {
	playlist domain.PlaylistRef
}

// NewCommandHandlers creates new CommandHandlers.
func NewCommandHandlers(playlist domain.PlaylistRef) *CommandHandlers {
	return &CommandHandlers{playlist: playlist}
}

// HandlePlaylist handles the /playlist command.
func (h *CommandHandlers) HandlePlaylist(
	_ *discordgo.Session,
	_ *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	url := h.playlist.WebURL()

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Playlist",
					URL:         url,
					Description: fmt.Sprintf("Mention a Spotify track link and it lands on top of [the playlist](%s).", url),
					Color:       colorSpotify,
				},
			},
		},
	})
}
