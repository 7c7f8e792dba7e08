package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// onMessageReactionAdd is called when a reaction is added
func (b *Bot) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}

	link := fmt.Sprintf("https://discord.com/channels/%s/%s/%s", r.GuildID, r.ChannelID, r.MessageID)
	if err := b.notify.Notify(fmt.Sprintf("User <@%s> added a reaction to message %s", r.UserID, link)); err != nil {
		log.Warn().Err(err).Msg("failed to post reaction audit line")
	}

	b.votes.HandleReaction(r.GuildID, r.ChannelID, r.MessageID, r.Emoji.Name, r.UserID)
}
