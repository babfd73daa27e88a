package insult

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/mo"

	"insultbot/clients"
	"insultbot/commands"
	"insultbot/core"
	"insultbot/core/log"
	"insultbot/models"
	"insultbot/utils"
)

// InsultUseCase turns `!insult` messages into exactly one reply per command
type InsultUseCase struct {
	discordClient clients.DiscordClient
	insultClient  clients.InsultClient
}

// NewInsultUseCase creates a new instance of InsultUseCase
func NewInsultUseCase(
	discordClient clients.DiscordClient,
	insultClient clients.InsultClient,
) *InsultUseCase {
	return &InsultUseCase{
		discordClient: discordClient,
		insultClient:  insultClient,
	}
}

// ProcessDiscordMessageEvent handles one incoming message. The only error it
// returns is a failed reply send, which callers should log and drop.
func (u *InsultUseCase) ProcessDiscordMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	command, parseErr := commands.ParseInsultCommand(event.Content)
	if command == nil && parseErr == nil {
		return nil
	}

	// Our own replies never start with the trigger, so an unknown bot user still gets a reply
	botUser, err := u.discordClient.GetBotUser()
	if err != nil {
		log.Warn("⚠️ Failed to get bot user, skipping self-message check",
			"event_id", event.EventID, "error", err)
	} else if event.AuthorID == botUser.ID {
		return nil
	}

	log.Info("📋 Starting to process insult command",
		"event_id", event.EventID, "author_id", event.AuthorID, "channel_id", event.ChannelID)

	reply := u.BuildReply(ctx, event.EventID, event.GuildID, command, parseErr)

	if err := u.sendReply(ctx, event, reply); err != nil {
		return err
	}

	log.Info("📋 Completed successfully - sent insult reply",
		"event_id", event.EventID, "channel_id", event.ChannelID)
	return nil
}

// BuildReply produces the reply text for a parsed command. Every failure is
// converted into user-facing text; it never returns an error.
func (u *InsultUseCase) BuildReply(
	ctx context.Context,
	eventID string,
	guildID mo.Option[string],
	command *models.InsultCommand,
	parseErr error,
) string {
	if core.IsParseError(parseErr) {
		if errors.Is(parseErr, core.ErrInvalidMention) {
			log.Info("⚠️ Invalid mention in insult command", "event_id", eventID, "error", parseErr)
			return InvalidMentionMessage
		}
		return UsageMessage
	}
	if parseErr != nil || command == nil || command.Kind == models.TargetKindNone {
		return UsageMessage
	}

	var target string
	switch command.Kind {
	case models.TargetKindMention:
		member, err := u.resolveMention(ctx, guildID, command.UserID)
		switch {
		case errors.Is(err, core.ErrLookupNotFound):
			log.Info("🔍 Mentioned user not found", "event_id", eventID, "user_id", command.UserID)
			return UserNotFoundMessage
		case core.IsLookupError(err):
			log.Error("❌ Failed to look up mentioned user",
				"event_id", eventID, "user_id", command.UserID, "error", err)
			return LookupFailedMessage
		case err != nil:
			log.Error("❌ Unexpected error looking up mentioned user",
				"event_id", eventID, "user_id", command.UserID, "error", err)
			return LookupFailedMessage
		}
		target = member.DisplayName()
	case models.TargetKindName:
		target = strings.TrimSpace(command.Name)
	}

	if target == "" {
		return UsageMessage
	}

	insult, err := u.insultClient.Generate(ctx, target)
	if err != nil {
		if errors.Is(err, core.ErrRemoteAPINonSuccess) {
			log.Warn("⚠️ Insult API returned an error", "event_id", eventID, "error", err)
			return APIFailureMessage
		}
		log.Error("❌ Insult API request failed", "event_id", eventID, "error", err)
		return APIUnreachableMessage
	}
	if insult == "" {
		log.Warn("⚠️ Insult API returned an empty body", "event_id", eventID)
		return APIFailureMessage
	}

	return insult
}

func (u *InsultUseCase) resolveMention(
	ctx context.Context,
	guildID mo.Option[string],
	userID string,
) (*clients.DiscordMember, error) {
	if id, ok := guildID.Get(); ok {
		return u.discordClient.GetGuildMember(ctx, id, userID)
	}
	return u.discordClient.GetUser(ctx, userID)
}

func (u *InsultUseCase) sendReply(ctx context.Context, event models.DiscordMessageEvent, reply string) error {
	trimmedReply := utils.TrimDiscordMessage(reply)
	if len(trimmedReply) < len(reply) {
		log.Warn("⚠️ Reply trimmed for Discord API limits",
			"event_id", event.EventID, "from", len(reply), "to", len(trimmedReply))
	}

	_, err := u.discordClient.PostMessage(ctx, event.ChannelID, clients.DiscordMessageParams{
		Content:          trimmedReply,
		ReplyToMessageID: event.MessageID,
	})
	if err != nil {
		return fmt.Errorf("failed to send insult reply: %w", err)
	}
	return nil
}
