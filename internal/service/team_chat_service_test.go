package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/events"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

func newTeamChatFixture(t *testing.T) (*TeamChatService, *memActorRepo, *recordingDispatcher) {
	t.Helper()
	actors := newMemActorRepo()
	dispatcher := newRecordingDispatcher()
	svc := NewTeamChatService(newMemTeamMessageRepo(), actors, dispatcher)
	return svc, actors, dispatcher
}

func TestChannelsForStaff(t *testing.T) {
	svc, _, _ := newTeamChatFixture(t)
	member := staff("s-1", "Desk", domain.CategoryLegal)

	channels, err := svc.Channels(context.Background(), member)

	require.NoError(t, err)
	assert.Equal(t, []domain.ChannelAddress{domain.ChannelGlobal, domain.PrivateChannel("s-1")}, channels)
}

func TestChannelsForSupervisorCoverActiveStaff(t *testing.T) {
	svc, actors, _ := newTeamChatFixture(t)
	active := staff("", "Active Desk", domain.CategoryLegal)
	require.NoError(t, actors.Create(context.Background(), active))
	inactive := staff("", "Former Desk", domain.CategoryLegal)
	inactive.Active = false
	require.NoError(t, actors.Create(context.Background(), inactive))

	channels, err := svc.Channels(context.Background(), supervisor("sup-1"))

	require.NoError(t, err)
	assert.Equal(t, []domain.ChannelAddress{domain.ChannelGlobal, domain.PrivateChannel(active.ID)}, channels)
}

func TestChannelsDeniedForCitizens(t *testing.T) {
	svc, _, _ := newTeamChatFixture(t)

	_, err := svc.Channels(context.Background(), citizen("u-1", "Mona"))

	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestSendAndHistoryOnGlobal(t *testing.T) {
	svc, _, dispatcher := newTeamChatFixture(t)
	member := staff("s-1", "Desk", domain.CategoryLegal)

	sent, err := svc.Send(context.Background(), member, domain.ChannelGlobal, "morning briefing at nine")
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelGlobal, sent.Channel)

	history, err := svc.History(context.Background(), supervisor("sup-1"), domain.ChannelGlobal)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "morning briefing at nine", history[0].Text)
	assert.Len(t, dispatcher.byType(events.EventTeamMessageSent), 1)
}

func TestPrivateChannelMembership(t *testing.T) {
	svc, _, _ := newTeamChatFixture(t)
	owner := staff("s-1", "Desk One", domain.CategoryLegal)
	other := staff("s-2", "Desk Two", domain.CategoryLegal)
	channel := domain.PrivateChannel("s-1")

	_, err := svc.Send(context.Background(), supervisor("sup-1"), channel, "please review case 12")
	require.NoError(t, err)

	history, err := svc.History(context.Background(), owner, channel)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = svc.History(context.Background(), other, channel)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))

	_, err = svc.Send(context.Background(), other, channel, "intruding")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestSendStaysOnAddressedChannel(t *testing.T) {
	svc, _, _ := newTeamChatFixture(t)
	member := staff("s-1", "Desk", domain.CategoryLegal)

	_, err := svc.Send(context.Background(), member, domain.PrivateChannel("s-1"), "note to the boss")
	require.NoError(t, err)

	global, err := svc.History(context.Background(), member, domain.ChannelGlobal)
	require.NoError(t, err)
	assert.Empty(t, global)
}

func TestSendValidation(t *testing.T) {
	svc, _, _ := newTeamChatFixture(t)
	member := staff("s-1", "Desk", domain.CategoryLegal)

	_, err := svc.Send(context.Background(), member, domain.ChannelAddress("hallway"), "hi")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

	_, err = svc.Send(context.Background(), member, domain.ChannelGlobal, "   ")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))

	_, err = svc.Send(context.Background(), citizen("u-1", "Mona"), domain.ChannelGlobal, "hello")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}
