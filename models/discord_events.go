package models

import "github.com/samber/mo"

// DiscordMessageEvent is a snapshot of an incoming Discord message.
// GuildID is absent for direct messages.
type DiscordMessageEvent struct {
	EventID   string
	GuildID   mo.Option[string]
	ChannelID string
	MessageID string
	AuthorID  string
	Content   string
}
