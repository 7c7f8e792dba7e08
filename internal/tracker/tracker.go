// Package tracker turns raw voice-state transitions into ledger events and
// log-channel notices.
package tracker

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"voicewarden/internal/ledger"
)

type Change int

const (
	ChangeNone Change = iota
	ChangeJoined
	ChangeLeft
	ChangeSwitched
)

// Classify maps a previous/new channel pair to a presence change. Events
// with an unchanged channel (mute, deafen, stream toggles) classify as
// ChangeNone.
func Classify(prevChannel, newChannel string) Change {
	switch {
	case newChannel == "" && prevChannel == "":
		return ChangeNone
	case newChannel == "":
		return ChangeLeft
	case prevChannel == "":
		return ChangeJoined
	case prevChannel == newChannel:
		return ChangeNone
	default:
		return ChangeSwitched
	}
}

// Notifier posts a line to the bot's log channel.
type Notifier interface {
	Notify(text string) error
}

type Tracker struct {
	ledger *ledger.Ledger
	notify Notifier
}

func New(l *ledger.Ledger, n Notifier) *Tracker {
	return &Tracker{ledger: l, notify: n}
}

// OnPresenceChange applies the transition to the ledger and emits exactly
// one notification. A channel switch closes the old session and opens a new
// one but still announces as a single "switched" line.
func (t *Tracker) OnPresenceChange(userID, prevChannel, newChannel string, at time.Time) {
	switch Classify(prevChannel, newChannel) {
	case ChangeJoined:
		t.apply(userID, ledger.EventJoined, at)
		t.send(fmt.Sprintf("User <@%s> joined voice channel <#%s>", userID, newChannel))
	case ChangeLeft:
		t.apply(userID, ledger.EventLeft, at)
		t.send(fmt.Sprintf("User <@%s> left voice channel", userID))
	case ChangeSwitched:
		t.apply(userID, ledger.EventLeft, at)
		t.apply(userID, ledger.EventJoined, at)
		t.send(fmt.Sprintf("User <@%s> switched voice channel to <#%s>", userID, newChannel))
	}
}

func (t *Tracker) apply(userID string, ev ledger.Event, at time.Time) {
	if _, err := t.ledger.Apply(userID, ev, at); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("presence ledger write failed")
		t.send(fmt.Sprintf("⚠️ presence ledger write failed for <@%s>: %v", userID, err))
	}
}

// send is fire-and-forget: the ledger update already happened and a failed
// notice must not undo or retry it.
func (t *Tracker) send(text string) {
	if err := t.notify.Notify(text); err != nil {
		log.Warn().Err(err).Msg("failed to post presence notice")
	}
}
