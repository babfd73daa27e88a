package clients

// DiscordBotUser represents Discord bot user information
type DiscordBotUser struct {
	ID       string
	Username string
	Bot      bool
}

// DiscordMember represents a Discord user, optionally with guild-specific details
type DiscordMember struct {
	UserID     string
	Username   string
	GlobalName string
	Nick       string // Guild nickname, empty outside guilds
}

// DisplayName returns the name Discord shows for the member
func (m DiscordMember) DisplayName() string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.GlobalName != "" {
		return m.GlobalName
	}
	return m.Username
}

// DiscordMessageParams holds parameters for sending Discord messages
type DiscordMessageParams struct {
	Content string
	// ReplyToMessageID makes the message a reply to the given message in the same channel
	ReplyToMessageID string
}

// DiscordPostMessageResponse represents the response from posting a message to Discord
type DiscordPostMessageResponse struct {
	ChannelID string
	MessageID string
}
