package client

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashAnnouncement() *ResultAnnouncement {
	return &ResultAnnouncement{
		EventId:      7,
		EventName:    "100m Dash",
		Categories:   []string{"Junior"},
		ResultNumber: "R5",
		Winners: []AnnouncedWinner{
			{Position: 1, Label: "1st place", Name: "Alice", Group: "Blue House", Points: 10},
			{Position: 1, Label: "1st place", Name: "Bob", Group: "Red House", Points: 10},
			{Position: 3, Label: "3rd place", Name: "Carol", Points: 5},
		},
	}
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func TestKafkaAnnouncerKeysByEvent(t *testing.T) {
	writer := &fakeWriter{}
	announcer := NewKafkaAnnouncer(writer)

	require.NoError(t, announcer.Announce(context.Background(), dashAnnouncement()))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("7"), writer.messages[0].Key)

	var decoded ResultAnnouncement
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, *dashAnnouncement(), decoded)

	writer.err = errors.New("leader not available")
	assert.ErrorContains(t, announcer.Announce(context.Background(), dashAnnouncement()), "leader not available")
}

type fakeSender struct {
	channel string
	embed   *discordgo.MessageEmbed
}

func (s *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	s.channel = channelID
	s.embed = embed
	return &discordgo.Message{}, nil
}

func TestDiscordAnnouncerPostsEmbed(t *testing.T) {
	sender := &fakeSender{}
	announcer := &DiscordAnnouncer{sender: sender, channelId: "results"}
	announcement := dashAnnouncement()
	announcement.PosterURLs = []string{"https://cdn/poster_black.png", "https://cdn/poster_pink.png"}

	require.NoError(t, announcer.Announce(context.Background(), announcement))
	assert.Equal(t, "results", sender.channel)
	embed := sender.embed
	assert.Equal(t, "Result R5: 100m Dash", embed.Title)
	assert.Equal(t, "Junior", embed.Description)
	assert.Equal(t, []*discordgo.MessageEmbedField{
		{Name: "1st place", Value: "Alice (Blue House)\nBob (Red House)"},
		{Name: "3rd place", Value: "Carol"},
	}, embed.Fields)
	assert.Equal(t, "https://cdn/poster_black.png", embed.Image.URL)
}

func TestResultEmbedWithoutPosters(t *testing.T) {
	embed := ResultEmbed(&ResultAnnouncement{EventName: "Relay", ResultNumber: "R9"})
	assert.Nil(t, embed.Image)
	assert.Empty(t, embed.Fields)
	assert.Empty(t, embed.Description)
}
