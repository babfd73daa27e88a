package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"insultbot/clients"
	"insultbot/core"
)

// DiscordClient implements the clients.DiscordClient interface on top of a discordgo session
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a Discord client sharing the bot's gateway session
func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{
		session: session,
	}
}

// GetBotUser returns the bot's own user, preferring the cached gateway state
func (c *DiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	if c.session.State != nil && c.session.State.User != nil {
		return toBotUser(c.session.State.User), nil
	}

	user, err := c.session.User("@me")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot user: %w", err)
	}
	return toBotUser(user), nil
}

// GetGuildMember fetches a member of a guild by user ID
func (c *DiscordClient) GetGuildMember(ctx context.Context, guildID, userID string) (*clients.DiscordMember, error) {
	member, err := c.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, classifyLookupError(err)
	}
	if member == nil || member.User == nil {
		return nil, fmt.Errorf("member %s in guild %s: %w", userID, guildID, core.ErrLookupNotFound)
	}

	return &clients.DiscordMember{
		UserID:     member.User.ID,
		Username:   member.User.Username,
		GlobalName: member.User.GlobalName,
		Nick:       member.Nick,
	}, nil
}

// GetUser fetches a user by ID, used when there is no guild context
func (c *DiscordClient) GetUser(ctx context.Context, userID string) (*clients.DiscordMember, error) {
	user, err := c.session.User(userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, classifyLookupError(err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, core.ErrLookupNotFound)
	}

	return &clients.DiscordMember{
		UserID:     user.ID,
		Username:   user.Username,
		GlobalName: user.GlobalName,
	}, nil
}

// PostMessage sends a message to a channel without pinging anyone mentioned in it
func (c *DiscordClient) PostMessage(
	ctx context.Context,
	channelID string,
	params clients.DiscordMessageParams,
) (*clients.DiscordPostMessageResponse, error) {
	data := &discordgo.MessageSend{
		Content:         params.Content,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{},
		},
	}
	if params.ReplyToMessageID != "" {
		failIfNotExists := false
		data.Reference = &discordgo.MessageReference{
			MessageID:       params.ReplyToMessageID,
			ChannelID:       channelID,
			FailIfNotExists: &failIfNotExists,
		}
	}

	message, err := c.session.ChannelMessageSendComplex(channelID, data, discordgo.WithContext(ctx))
	if err != nil {
		if restStatus(err) == http.StatusForbidden {
			return nil, fmt.Errorf("%w: %w", core.ErrSendForbidden, err)
		}
		return nil, fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}

	return &clients.DiscordPostMessageResponse{
		ChannelID: message.ChannelID,
		MessageID: message.ID,
	}, nil
}

func toBotUser(user *discordgo.User) *clients.DiscordBotUser {
	return &clients.DiscordBotUser{
		ID:       user.ID,
		Username: user.Username,
		Bot:      user.Bot,
	}
}

func classifyLookupError(err error) error {
	switch restStatus(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", core.ErrLookupNotFound, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", core.ErrLookupForbidden, err)
	default:
		return fmt.Errorf("%w: %w", core.ErrLookupTransport, err)
	}
}

// restStatus returns the HTTP status of a discordgo REST error, or 0 for other errors
func restStatus(err error) int {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode
	}
	return 0
}
