package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordAnnouncer posts results as an embed into a single channel.
type DiscordAnnouncer struct {
	sender    EmbedSender
	channelId string
}

func NewDiscordAnnouncer(token string, channelId string) (*DiscordAnnouncer, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	return &DiscordAnnouncer{sender: session, channelId: channelId}, nil
}

func (a *DiscordAnnouncer) Name() string {
	return "discord"
}

func (a *DiscordAnnouncer) Announce(ctx context.Context, announcement *ResultAnnouncement) error {
	_, err := a.sender.ChannelMessageSendEmbed(a.channelId, ResultEmbed(announcement), discordgo.WithContext(ctx))
	return err
}

// ResultEmbed renders an announcement as one embed field per position.
func ResultEmbed(announcement *ResultAnnouncement) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Result %s: %s", announcement.ResultNumber, announcement.EventName),
		Color:  0xFCE009,
		Fields: make([]*discordgo.MessageEmbedField, 0),
	}
	if len(announcement.Categories) > 0 {
		embed.Description = strings.Join(announcement.Categories, ", ")
	}
	lines := make(map[string][]string)
	labels := make([]string, 0)
	for _, winner := range announcement.Winners {
		if _, ok := lines[winner.Label]; !ok {
			labels = append(labels, winner.Label)
		}
		line := winner.Name
		if winner.Group != "" {
			line = fmt.Sprintf("%s (%s)", winner.Name, winner.Group)
		}
		lines[winner.Label] = append(lines[winner.Label], line)
	}
	for _, label := range labels {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  label,
			Value: strings.Join(lines[label], "\n"),
		})
	}
	if len(announcement.PosterURLs) > 0 {
		embed.Image = &discordgo.MessageEmbedImage{URL: announcement.PosterURLs[0]}
	}
	return embed
}
