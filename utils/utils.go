package utils

// DiscordMessageLimit is the maximum number of characters Discord accepts in a message
const DiscordMessageLimit = 2000

func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}

// TrimDiscordMessage cuts a message down to Discord's character limit.
// Trimmed messages end with "..." so readers can tell the text was cut.
func TrimDiscordMessage(message string) string {
	runes := []rune(message)
	if len(runes) <= DiscordMessageLimit {
		return message
	}

	return string(runes[:DiscordMessageLimit-3]) + "..."
}
