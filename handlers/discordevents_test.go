package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"insultbot/core"
	"insultbot/models"
	insultusecase "insultbot/usecases/insult"
)

func newTestHandler(t *testing.T) (*DiscordEventsHandler, *insultusecase.MockInsultUseCase) {
	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	useCase := new(insultusecase.MockInsultUseCase)
	handler := NewDiscordEventsHandler(session, useCase, 2)
	t.Cleanup(func() { useCase.AssertExpectations(t) })
	return handler, useCase
}

func newMessageCreate(guildID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "msg-1",
			ChannelID: "channel-1",
			GuildID:   guildID,
			Content:   content,
			Author:    &discordgo.User{ID: "user-1", Username: "alice"},
		},
	}
}

func TestNewDiscordEventsHandler_ConfiguresSession(t *testing.T) {
	handler, _ := newTestHandler(t)
	defer handler.workerPool.StopWait()

	session := handler.discordSDKClient
	assert.True(t, session.SyncEvents)
	assert.Equal(t,
		discordgo.IntentsGuildMessages|discordgo.IntentsDirectMessages|discordgo.IntentsMessageContent,
		session.Identify.Intents)
	assert.False(t, handler.IsReady())
}

func TestNewDiscordEventsHandler_DefaultWorkers(t *testing.T) {
	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	handler := NewDiscordEventsHandler(session, new(insultusecase.MockInsultUseCase), 0)
	defer handler.workerPool.StopWait()

	assert.Equal(t, DefaultWorkers, handler.workerPool.Size())
}

func TestMapToDiscordMessageEvent_Guild(t *testing.T) {
	event := mapToDiscordMessageEvent(newMessageCreate("guild-1", "!insult <@42>"))

	assert.True(t, core.IsValidID(event.EventID))
	assert.Equal(t, mo.Some("guild-1"), event.GuildID)
	assert.Equal(t, "channel-1", event.ChannelID)
	assert.Equal(t, "msg-1", event.MessageID)
	assert.Equal(t, "user-1", event.AuthorID)
	assert.Equal(t, "!insult <@42>", event.Content)
}

func TestMapToDiscordMessageEvent_DirectMessage(t *testing.T) {
	event := mapToDiscordMessageEvent(newMessageCreate("", "!insult Bob"))

	assert.True(t, event.GuildID.IsAbsent())
}

func TestHandleMessageCreatedEvent_SubmitsToUseCase(t *testing.T) {
	handler, useCase := newTestHandler(t)

	useCase.On("ProcessDiscordMessageEvent", mock.Anything, mock.MatchedBy(func(event models.DiscordMessageEvent) bool {
		return event.Content == "!insult Bob" && event.ChannelID == "channel-1"
	})).Return(nil).Once()

	handler.handleMessageCreatedEvent(handler.discordSDKClient, newMessageCreate("guild-1", "!insult Bob"))
	handler.workerPool.StopWait()
}

func TestHandleMessageCreatedEvent_AfterWorkersStopped(t *testing.T) {
	handler, useCase := newTestHandler(t)
	handler.workerPool.StopWait()

	assert.NotPanics(t, func() {
		handler.handleMessageCreatedEvent(handler.discordSDKClient, newMessageCreate("guild-1", "!insult Bob"))
	})
	useCase.AssertNotCalled(t, "ProcessDiscordMessageEvent", mock.Anything, mock.Anything)
}

func TestStopBot_ClosesSessionThenDropsLateEvents(t *testing.T) {
	handler, useCase := newTestHandler(t)
	session := handler.discordSDKClient

	session.Lock()
	session.DataReady = true
	session.Unlock()
	require.True(t, handler.IsReady())

	handler.StopBot()

	assert.False(t, handler.IsReady())
	assert.True(t, handler.workerPool.Stopped())
	assert.NotPanics(t, func() {
		handler.handleMessageCreatedEvent(session, newMessageCreate("guild-1", "!insult Bob"))
	})
	useCase.AssertNotCalled(t, "ProcessDiscordMessageEvent", mock.Anything, mock.Anything)
}

func TestStopBot_FinishesQueuedEvents(t *testing.T) {
	handler, useCase := newTestHandler(t)
	useCase.On("ProcessDiscordMessageEvent", mock.Anything, mock.Anything).Return(nil).Twice()

	handler.handleMessageCreatedEvent(handler.discordSDKClient, newMessageCreate("guild-1", "!insult Bob"))
	handler.handleMessageCreatedEvent(handler.discordSDKClient, newMessageCreate("", "!insult Carol"))
	handler.StopBot()

	useCase.AssertNumberOfCalls(t, "ProcessDiscordMessageEvent", 2)
}

func TestIsReady_ConcurrentWithSessionUpdates(t *testing.T) {
	handler, _ := newTestHandler(t)
	defer handler.workerPool.StopWait()
	session := handler.discordSDKClient

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			session.Lock()
			session.DataReady = i%2 == 0
			session.Unlock()
		}
	}()
	for i := 0; i < 100; i++ {
		handler.IsReady()
	}
	<-done

	assert.False(t, handler.IsReady())
}

func TestHandleMessageCreatedEvent_IgnoresMessagesWithoutAuthor(t *testing.T) {
	handler, useCase := newTestHandler(t)

	message := newMessageCreate("guild-1", "!insult Bob")
	message.Author = nil
	handler.handleMessageCreatedEvent(handler.discordSDKClient, message)
	handler.workerPool.StopWait()

	useCase.AssertNotCalled(t, "ProcessDiscordMessageEvent", mock.Anything, mock.Anything)
}

func TestProcessMessageEvent_ContainsFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "Send forbidden", err: fmt.Errorf("failed to send insult reply: %w", core.ErrSendForbidden)},
		{name: "Other error", err: errors.New("failed to get bot user")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, useCase := newTestHandler(t)
			defer handler.workerPool.StopWait()
			useCase.On("ProcessDiscordMessageEvent", mock.Anything, mock.Anything).Return(tt.err).Once()

			assert.NotPanics(t, func() {
				handler.processMessageEvent(models.DiscordMessageEvent{EventID: "evt_1", ChannelID: "channel-1"})
			})
		})
	}
}

func TestProcessMessageEvent_RecoversPanics(t *testing.T) {
	handler, useCase := newTestHandler(t)
	defer handler.workerPool.StopWait()
	useCase.On("ProcessDiscordMessageEvent", mock.Anything, mock.Anything).Panic("boom").Once()

	assert.NotPanics(t, func() {
		handler.processMessageEvent(models.DiscordMessageEvent{EventID: "evt_1"})
	})
}
