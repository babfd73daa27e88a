package clients

import "context"

// DiscordClient defines the Discord operations the bot needs
type DiscordClient interface {
	GetBotUser() (*DiscordBotUser, error)
	GetGuildMember(ctx context.Context, guildID, userID string) (*DiscordMember, error)
	GetUser(ctx context.Context, userID string) (*DiscordMember, error)
	PostMessage(
		ctx context.Context,
		channelID string,
		params DiscordMessageParams,
	) (*DiscordPostMessageResponse, error)
}

// InsultClient generates an insult for a target name
type InsultClient interface {
	Generate(ctx context.Context, who string) (string, error)
}
