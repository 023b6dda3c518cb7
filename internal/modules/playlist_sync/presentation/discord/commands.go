package discord

import "github.com/bwmarrin/discordgo"

// CommandPlaylist is the name of the slash command that links the curated playlist.
const CommandPlaylist = "playlist"

// Commands returns all slash commands for the playlist sync module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandPlaylist,
			Description: "Show the link to the curated playlist",
		},
	}
}
