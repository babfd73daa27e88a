package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"insultbot/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordBotUser), args.Error(1)
}

func (m *MockDiscordClient) GetGuildMember(
	ctx context.Context,
	guildID, userID string,
) (*clients.DiscordMember, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMember), args.Error(1)
}

func (m *MockDiscordClient) GetUser(ctx context.Context, userID string) (*clients.DiscordMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMember), args.Error(1)
}

func (m *MockDiscordClient) PostMessage(
	ctx context.Context,
	channelID string,
	params clients.DiscordMessageParams,
) (*clients.DiscordPostMessageResponse, error) {
	args := m.Called(ctx, channelID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordPostMessageResponse), args.Error(1)
}
