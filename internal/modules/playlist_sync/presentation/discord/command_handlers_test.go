package discord

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/playlistbot/internal/bot"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

func TestCommands(t *testing.T) {
	commands := Commands()

	if len(commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(commands))
	}
	if commands[0].Name != CommandPlaylist {
		t.Errorf("expected command %q, got %q", CommandPlaylist, commands[0].Name)
	}
}

func TestCommandHandlers_HandlePlaylist(t *testing.T) {
	handlers := NewCommandHandlers(domain.PlaylistRef{Owner: "owner", ID: "pl1"})
	responder := &bot.MockResponder{}

	err := handlers.HandlePlaylist(nil, nil, responder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if responder.LastResponse == nil {
		t.Fatal("expected response, got nil")
	}
	if responder.LastResponse.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("expected response type %d, got %d",
			discordgo.InteractionResponseChannelMessageWithSource,
			responder.LastResponse.Type)
	}

	data := responder.LastResponse.Data
	if data == nil || len(data.Embeds) != 1 {
		t.Fatal("expected a single embed")
	}
	embed := data.Embeds[0]
	if embed.URL != "https://open.spotify.com/playlist/pl1" {
		t.Errorf("expected playlist URL, got %q", embed.URL)
	}
	if !strings.Contains(embed.Description, "https://open.spotify.com/playlist/pl1") {
		t.Errorf("expected description to link the playlist, got %q", embed.Description)
	}
}

func TestCommandHandlers_HandlePlaylist_ResponderError(t *testing.T) {
	handlers := NewCommandHandlers(domain.PlaylistRef{Owner: "owner", ID: "pl1"})
	expectedErr := errors.New("responder failed")
	responder := &bot.MockResponder{Err: expectedErr}

	err := handlers.HandlePlaylist(nil, nil, responder)
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}
