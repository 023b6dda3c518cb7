package bot

import "github.com/bwmarrin/discordgo"

// Responder answers a slash command interaction.
// Command handlers take it instead of a session so they can run without Discord.
type Responder interface {
	Respond(response *discordgo.InteractionResponse) error
}

// DiscordResponder answers through the interaction callback of a live session.
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

// NewDiscordResponder creates a DiscordResponder for one interaction.
func NewDiscordResponder(s *discordgo.Session, i *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond implements Responder.
func (r *DiscordResponder) Respond(response *discordgo.InteractionResponse) error {
	return r.session.InteractionRespond(r.interaction, response)
}

// MockResponder records responses in tests.
type MockResponder struct {
	// Responses holds every response in order; LastResponse is the latest.
	Responses    []*discordgo.InteractionResponse
	LastResponse *discordgo.InteractionResponse
	Err          error
}

// Respond records the response and returns Err.
func (m *MockResponder) Respond(response *discordgo.InteractionResponse) error {
	m.Responses = append(m.Responses, response)
	m.LastResponse = response
	return m.Err
}
