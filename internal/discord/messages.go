package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"voicewarden/internal/commands"
	"voicewarden/internal/votes"
	"voicewarden/pkg/util"
)

// onMessageCreate is called when a message is created
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	content := strings.TrimSpace(m.Content)
	switch {
	case content == "!voicetime":
		b.handleVoiceTime(s, m)
	case strings.HasPrefix(content, b.cfg.VoteCommand):
		b.handleVoteCommand(s, m)
	default:
		if response, ok := commands.Lookup(content); ok {
			b.reply(s, m.ChannelID, response)
		}
	}
}

// handleVoteCommand opens a vote proposal against the first mentioned user.
func (b *Bot) handleVoteCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	var targetID string
	if len(m.Mentions) > 0 {
		targetID = m.Mentions[0].ID
	}

	err := b.votes.OpenProposal(m.ChannelID, targetID)
	switch {
	case errors.Is(err, votes.ErrNoTarget):
		b.reply(s, m.ChannelID, fmt.Sprintf("Usage: `%s @user`", b.cfg.VoteCommand))
	case err != nil:
		log.Error().Err(err).Str("channel_id", m.ChannelID).Msg("failed to open vote proposal")
	}
}

func (b *Bot) handleVoiceTime(s *discordgo.Session, m *discordgo.MessageCreate) {
	rec, ok := b.ledger.Get(m.Author.ID)
	if !ok {
		b.reply(s, m.ChannelID, "No voice time on record yet.")
		return
	}

	text := fmt.Sprintf("<@%s> has spent %s in voice channels.",
		m.Author.ID, util.FormatDuration(rec.AccumulatedSeconds))
	if rec.SessionOpen() {
		text += " A session is currently running."
	}
	b.reply(s, m.ChannelID, text)
}

func (b *Bot) reply(s *discordgo.Session, channelID, text string) {
	if _, err := s.ChannelMessageSend(channelID, text); err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("failed to send message")
	}
}
