package usecases

import (
	"context"

	"insultbot/models"
)

// InsultUseCaseInterface defines the interface for insult command handling
type InsultUseCaseInterface interface {
	ProcessDiscordMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error
}
