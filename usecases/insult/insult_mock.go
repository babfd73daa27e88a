package insult

import (
	"context"

	"github.com/stretchr/testify/mock"

	"insultbot/models"
)

// MockInsultUseCase is a mock implementation of the InsultUseCase
type MockInsultUseCase struct {
	mock.Mock
}

func (m *MockInsultUseCase) ProcessDiscordMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
