package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// onVoiceStateUpdate is called when a user's voice state changes
func (b *Bot) onVoiceStateUpdate(s *discordgo.Session, vs *discordgo.VoiceStateUpdate) {
	if s.State.User != nil && vs.UserID == s.State.User.ID {
		return
	}

	prevChannel := ""
	if vs.BeforeUpdate != nil {
		prevChannel = vs.BeforeUpdate.ChannelID
	}

	b.tracker.OnPresenceChange(vs.UserID, prevChannel, vs.ChannelID, time.Now().UTC())
}
