package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/gammazero/workerpool"
	"github.com/samber/mo"

	"insultbot/core"
	"insultbot/core/log"
	"insultbot/models"
	"insultbot/usecases"
	"insultbot/utils"
)

const DefaultWorkers = 8

type DiscordEventsHandler struct {
	discordSDKClient *discordgo.Session
	insultUseCase    usecases.InsultUseCaseInterface
	workerPool       *workerpool.WorkerPool
	// submitMu keeps Submit and StopWait from interleaving
	submitMu sync.Mutex
}

// NewDiscordEventsHandler registers the bot's event handlers on the session.
// Events are handed off to a pool of at most `workers` goroutines.
func NewDiscordEventsHandler(
	session *discordgo.Session,
	insultUseCase usecases.InsultUseCaseInterface,
	workers int,
) *DiscordEventsHandler {
	if workers < 1 {
		workers = DefaultWorkers
	}

	handler := &DiscordEventsHandler{
		discordSDKClient: session,
		insultUseCase:    insultUseCase,
		workerPool:       workerpool.New(workers),
	}

	// The worker pool provides the concurrency, so discordgo should not spawn its own goroutines
	session.SyncEvents = true

	session.AddHandler(handler.handleReadyEvent)
	session.AddHandler(handler.handleMessageCreatedEvent)

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Info("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot closes the Discord connection so no new events arrive, then finishes in-flight events
func (h *DiscordEventsHandler) StopBot() {
	if err := h.discordSDKClient.Close(); err != nil {
		log.Warn("⚠️ Failed to close Discord session cleanly", "error", err)
	}

	h.submitMu.Lock()
	defer h.submitMu.Unlock()
	h.workerPool.StopWait()
	log.Info("🛑 Discord event workers stopped")
}

// IsReady reports whether the gateway websocket is connected
func (h *DiscordEventsHandler) IsReady() bool {
	h.discordSDKClient.RLock()
	defer h.discordSDKClient.RUnlock()
	return h.discordSDKClient.DataReady
}

func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	if r.User == nil {
		return
	}
	log.Info("✅ Logged in", "username", r.User.Username, "user_id", r.User.ID, "guilds", len(r.Guilds))
}

// handleMessageCreatedEvent maps the message and queues it for processing
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil {
		return
	}

	event := mapToDiscordMessageEvent(m)
	log.Debug("📨 Discord message received",
		"event_id", event.EventID, "author_id", event.AuthorID, "channel_id", event.ChannelID)

	h.submitMu.Lock()
	defer h.submitMu.Unlock()
	if h.workerPool.Stopped() {
		log.Warn("⚠️ Event workers stopped - dropping Discord message", "event_id", event.EventID)
		return
	}
	h.workerPool.Submit(func() {
		h.processMessageEvent(event)
	})
}

// processMessageEvent runs one event to completion. Failures stay inside this call.
func (h *DiscordEventsHandler) processMessageEvent(event models.DiscordMessageEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("❌ Panic while processing Discord message", "event_id", event.EventID, "panic", r)
		}
	}()

	err := h.insultUseCase.ProcessDiscordMessageEvent(context.Background(), event)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrSendForbidden):
		log.Warn("⚠️ Not allowed to reply in channel - dropping reply",
			"event_id", event.EventID, "channel_id", event.ChannelID, "error", err)
	default:
		log.Error("❌ Failed to process Discord message",
			"event_id", event.EventID, "channel_id", event.ChannelID, "error", err)
	}
}

// mapToDiscordMessageEvent maps a Discord SDK message event to our domain model
func mapToDiscordMessageEvent(m *discordgo.MessageCreate) models.DiscordMessageEvent {
	guildID := mo.None[string]()
	if m.GuildID != "" {
		guildID = mo.Some(m.GuildID)
	}

	eventID := core.NewID("evt")
	utils.AssertInvariant(core.IsValidID(eventID), "generated event id must be valid")

	return models.DiscordMessageEvent{
		EventID:   eventID,
		GuildID:   guildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		AuthorID:  m.Author.ID,
		Content:   m.Content,
	}
}
