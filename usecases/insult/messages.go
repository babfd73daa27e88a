package insult

// Replies sent back to the channel
const (
	UsageMessage          = "Please tell me who to insult. Usage: `!insult @username` or `!insult <name>`"
	InvalidMentionMessage = "That mention doesn't look right. Usage: `!insult @username` or `!insult <name>`"
	UserNotFoundMessage   = "I could not find that user."
	LookupFailedMessage   = "Something went wrong while looking up that user."
	APIFailureMessage     = "I couldn't generate an insult right now."
	APIUnreachableMessage = "I couldn't reach the insult service. Try again later."
)
