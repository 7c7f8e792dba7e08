package votes

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"voicewarden/pkg/util"
)

// ErrNoTarget is returned when a vote command names nobody. Callers reply
// with a usage hint; no proposal is created.
var ErrNoTarget = errors.New("vote command has no target mention")

// Messenger posts a message and returns the assigned message ID.
type Messenger interface {
	PostMessage(channelID, content string) (string, error)
}

// Moderator applies a temporary communication timeout to a guild member.
type Moderator interface {
	Timeout(guildID, userID string, d time.Duration) error
}

type Coordinator struct {
	tally   *Tally
	posts   Messenger
	mod     Moderator
	emoji   string
	muteFor time.Duration
}

func NewCoordinator(tally *Tally, posts Messenger, mod Moderator, emoji string, muteFor time.Duration) *Coordinator {
	return &Coordinator{
		tally:   tally,
		posts:   posts,
		mod:     mod,
		emoji:   emoji,
		muteFor: muteFor,
	}
}

// OpenProposal posts the vote announcement and binds the tally entry to the
// posted message. Two-phase: if the post fails, nothing is tracked.
func (c *Coordinator) OpenProposal(channelID, targetID string) error {
	if targetID == "" {
		return ErrNoTarget
	}

	text := fmt.Sprintf("Vote to mute <@%s> for %s: react with %s to agree.",
		targetID, util.FormatDuration(int64(c.muteFor.Seconds())), c.emoji)
	messageID, err := c.posts.PostMessage(channelID, text)
	if err != nil {
		return fmt.Errorf("post vote announcement: %w", err)
	}

	c.tally.Track(messageID, targetID)
	log.Info().
		Str("message_id", messageID).
		Str("target_id", targetID).
		Msg("vote proposal opened")
	return nil
}

// HandleReaction tallies one reaction. On threshold it applies the timeout
// and posts a confirmation; the tally entry is already resolved by then, so
// an action failure is reported without re-opening the vote.
func (c *Coordinator) HandleReaction(guildID, channelID, messageID, emoji, voterID string) {
	if emoji != c.emoji {
		return
	}

	outcome, count, targetID := c.tally.RecordVote(messageID, voterID)
	switch outcome {
	case OutcomeUnknown:
		return
	case OutcomeAlreadyCounted:
		log.Debug().
			Str("message_id", messageID).
			Str("voter_id", voterID).
			Msg("duplicate vote ignored")
	case OutcomeCounted:
		log.Info().
			Str("message_id", messageID).
			Str("target_id", targetID).
			Int("count", count).
			Msg("vote counted")
	case OutcomeThresholdReached:
		c.resolve(guildID, channelID, targetID, count)
	}
}

func (c *Coordinator) resolve(guildID, channelID, targetID string, count int) {
	if err := c.mod.Timeout(guildID, targetID, c.muteFor); err != nil {
		log.Error().Err(err).
			Str("guild_id", guildID).
			Str("target_id", targetID).
			Msg("vote passed but applying the timeout failed")
		c.post(channelID, fmt.Sprintf("Vote against <@%s> passed, but applying the timeout failed: %v", targetID, err))
		return
	}

	log.Info().
		Str("guild_id", guildID).
		Str("target_id", targetID).
		Int("count", count).
		Msg("vote resolved, timeout applied")
	c.post(channelID, fmt.Sprintf("Vote passed with %d vote(s): <@%s> is muted for %s.",
		count, targetID, util.FormatDuration(int64(c.muteFor.Seconds()))))
}

func (c *Coordinator) post(channelID, text string) {
	if _, err := c.posts.PostMessage(channelID, text); err != nil {
		log.Warn().Err(err).Msg("failed to post vote notice")
	}
}
