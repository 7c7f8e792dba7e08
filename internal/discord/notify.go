package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// channelNotifier posts notices to the configured log channel. Satisfies
// tracker.Notifier and votes.Notifier.
type channelNotifier struct {
	session   *discordgo.Session
	channelID string
}

func (n *channelNotifier) Notify(text string) error {
	_, err := n.session.ChannelMessageSend(n.channelID, text)
	return err
}

type sessionMessenger struct {
	session *discordgo.Session
}

func (m *sessionMessenger) PostMessage(channelID, content string) (string, error) {
	msg, err := m.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

type guildModerator struct {
	session *discordgo.Session
}

// Timeout resolves the member within the guild first so that a user who
// already left produces a clear error instead of a blind API failure.
func (g *guildModerator) Timeout(guildID, userID string, d time.Duration) error {
	if _, err := g.session.GuildMember(guildID, userID); err != nil {
		return fmt.Errorf("resolve guild member %s: %w", userID, err)
	}
	until := time.Now().Add(d)
	if err := g.session.GuildMemberTimeout(guildID, userID, &until); err != nil {
		return fmt.Errorf("timeout guild member %s: %w", userID, err)
	}
	return nil
}
