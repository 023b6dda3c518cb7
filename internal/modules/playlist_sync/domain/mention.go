package domain

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"
)

// Mention is an inbound chat message that may reference a track.
type Mention struct {
	ID        uuid.UUID
	ChannelID snowflake.ID
	MessageID snowflake.ID
	AuthorID  snowflake.ID
	Content   string
}

// NewMention creates a Mention with a fresh correlation ID.
func NewMention(channelID, messageID, authorID snowflake.ID, content string) Mention {
	return Mention{
		ID:        uuid.New(),
		ChannelID: channelID,
		MessageID: messageID,
		AuthorID:  authorID,
		Content:   content,
	}
}
