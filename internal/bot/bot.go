package bot

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Intents are the gateway intents the bot identifies with. Reading track links
// requires the privileged message content intent.
const Intents = discordgo.IntentsAllWithoutPrivileged | discordgo.IntentMessageContent

// Notice colors for interactions the bot answers itself.
const (
	colorNoticeWarn  = 0xF1C40F
	colorNoticeError = 0xE74C3C
)

// Bot owns the Discord session and drives the loaded modules through it.
type Bot struct {
	config   *Config
	session  *discordgo.Session
	modules  []Module
	handlers map[string]InteractionHandler
}

// NewBot creates a Bot for the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:   cfg,
		handlers: make(map[string]InteractionHandler),
	}
}

// LoadModules takes the modules that registered themselves in init().
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start loads module configuration, connects to Discord, initializes modules,
// and registers commands.
func (b *Bot) Start() error {
	// Bad module configuration fails before any connection is made
	if err := b.loadModuleConfigs(); err != nil {
		return fmt.Errorf("failed to load module configuration: %w", err)
	}

	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = Intents
	b.session = session

	// Modules read the bot user from the ready state, so connect first
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	b.buildHandlerMap()
	b.session.AddHandler(b.handleInteraction)
	b.registerEventHandlers()

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
	)

	return nil
}

// Stop closes the gateway connection, then shuts the modules down.
// Modules may still use the REST API while draining.
func (b *Bot) Stop() error {
	var closeErr error
	if b.session != nil {
		closeErr = b.session.Close()
	}

	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	return closeErr
}

// loadModuleConfigs calls LoadConfig on every module that needs configuration.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		configurable, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := configurable.LoadConfig(); err != nil {
			return fmt.Errorf("invalid %s module configuration: %w", mod.Name(), err)
		}
		slog.Debug("loaded module configuration", "module", mod.Name())
	}

	return nil
}

// initModules initializes the loaded modules in registration order.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Session: b.session,
	}

	names := make([]string, 0, len(b.modules))
	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		names = append(names, mod.Name())
	}
	slog.Info("initialized modules", "modules", names)

	return nil
}

// buildHandlerMap indexes command handlers by command name.
// A name claimed by two modules keeps the first handler.
func (b *Bot) buildHandlerMap() {
	for _, mod := range b.modules {
		for name, handler := range mod.CommandHandlers() {
			if _, taken := b.handlers[name]; taken {
				slog.Warn("ignored duplicate command handler", "command", name, "module", mod.Name())
				continue
			}
			b.handlers[name] = handler
		}
	}
}

// registerEventHandlers adds every module's gateway handlers to the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}

// collectCommands gathers all commands from loaded modules.
func (b *Bot) collectCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, mod := range b.modules {
		commands = append(commands, mod.Commands()...)
	}
	return commands
}

// registerCommands replaces the bot's global commands with the modules' commands,
// which also drops commands left over from earlier deployments.
func (b *Bot) registerCommands() error {
	commands := b.collectCommands()

	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, "", commands)
	if err != nil {
		return err
	}

	for _, cmd := range registered {
		slog.Debug("registered command", "command", cmd.Name)
	}

	return nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.dispatch(s, i, NewDiscordResponder(s, i.Interaction))
}

// dispatch runs the handler for a slash command. Unknown commands and handler
// failures are answered with a notice so the user is never left waiting.
func (b *Bot) dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, r Responder) {
	name := i.ApplicationCommandData().Name

	handler, ok := b.handlers[name]
	if !ok {
		slog.Warn("found no handler for command", "command", name)
		respondNotice(r, "Unknown Command", "This command is not recognized.", colorNoticeWarn)
		return
	}

	if err := handler(s, i, r); err != nil {
		slog.Error("failed to handle command", "command", name, "error", err)
		respondNotice(r, "Error", "Something went wrong while running this command.", colorNoticeError)
	}
}

func respondNotice(r Responder, title, description string, color int) {
	err := r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       title,
					Description: description,
					Color:       color,
				},
			},
		},
	})
	if err != nil {
		slog.Error("failed to send notice", "title", title, "error", err)
	}
}
