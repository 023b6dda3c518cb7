package ports

import "github.com/disgoorg/snowflake/v2"

// Replier sends a text reply addressed to an earlier chat message.
type Replier interface {
	Reply(channelID, messageID snowflake.ID, content string) error
}
