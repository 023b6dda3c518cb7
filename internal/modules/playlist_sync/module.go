package playlist_sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/playlistbot/internal/bot"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/usecases"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/infrastructure"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/presentation/discord"
)

func init() {
	bot.Register(&PlaylistSyncModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*PlaylistSyncModule)(nil)

var (
	errConfigNotLoaded = errors.New("configuration not loaded")
	errNoSession       = errors.New("discord session required")
)

// PlaylistSyncModule curates a Spotify playlist from track links posted in chat.
type PlaylistSyncModule struct {
	config *Config

	commandHandlers *discord.CommandHandlers
	messageHandler  *discord.MessageHandler

	// Background and foreground workers
	scheduler      *application.RefreshScheduler
	mentionQueue   *infrastructure.MentionQueue
	mentionHandler *application.MentionHandler
}

// Name returns the module name.
func (m *PlaylistSyncModule) Name() string {
	return "playlist_sync"
}

// Commands returns the slash commands for this module.
func (m *PlaylistSyncModule) Commands() []*discordgo.ApplicationCommand {
	return discord.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *PlaylistSyncModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		discord.CommandPlaylist: m.commandHandlers.HandlePlaylist,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *PlaylistSyncModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		m.messageHandler.HandleMessageCreate,
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *PlaylistSyncModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module. The first credential refresh happens here, so
// no mention is served before a credential exists.
func (m *PlaylistSyncModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		return errConfigNotLoaded
	}
	if deps.Session == nil {
		return errNoSession
	}
	botID, err := snowflake.Parse(deps.Session.State.User.ID)
	if err != nil {
		return fmt.Errorf("failed to parse bot user ID: %w", err)
	}

	playlist := domain.PlaylistRef{
		Owner: m.config.PlaylistOwner,
		ID:    m.config.PlaylistID,
	}

	// Create infrastructure
	cache := infrastructure.NewCredentialCache()
	refresher, err := infrastructure.NewSpotifyRefresher(infrastructure.SpotifyRefresherConfig{
		ClientID:     m.config.ClientID,
		ClientSecret: m.config.ClientSecret,
		RefreshToken: m.config.RefreshToken,
		TokenURL:     m.config.TokenURL,
	})
	if err != nil {
		return err
	}
	spotifyClient := infrastructure.NewSpotifyClient(infrastructure.SpotifyConfig{
		BaseURL:           m.config.APIBaseURL,
		RequestsPerSecond: m.config.RequestsPerSecond,
	})
	replier := infrastructure.NewDiscordReplier(deps.Session)

	// Create services
	credentials := usecases.NewCredentialService(refresher, cache)
	curate := usecases.NewCurateService(
		playlist,
		cache,
		usecases.NewPlaylistIndexService(spotifyClient),
		usecases.NewSyncService(spotifyClient),
	)

	// Eager refresh, then the periodic one
	m.scheduler = application.NewRefreshScheduler(credentials, m.config.RefreshInterval)
	if err := m.scheduler.RefreshNow(context.Background()); err != nil {
		return fmt.Errorf("initial credential refresh: %w", err)
	}
	m.scheduler.Start()

	// Foreground pipeline
	m.mentionQueue = infrastructure.NewMentionQueue(infrastructure.DefaultMentionBufferSize)
	m.mentionHandler = application.NewMentionHandler(curate, replier, m.mentionQueue)
	if err := m.mentionHandler.Start(); err != nil {
		m.scheduler.Stop()
		return err
	}

	// Create presentation handlers
	m.commandHandlers = discord.NewCommandHandlers(playlist)
	m.messageHandler = discord.NewMessageHandler(botID, m.mentionQueue)

	slog.Info(
		"playlist_sync module initialized",
		"playlist", playlist.ID,
		"owner", playlist.Owner,
		"refresh_interval", m.config.RefreshInterval,
	)

	return nil
}

// Shutdown cleans up module resources.
func (m *PlaylistSyncModule) Shutdown() error {
	// Stop the background refresh first so nothing writes the cache during drain
	if m.scheduler != nil {
		m.scheduler.Stop()
	}

	// Drain queued mentions
	if m.mentionQueue != nil {
		m.mentionQueue.Close()
	}

	return nil
}
