// /internal/discord/bot.go
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"voicewarden/internal/config"
	"voicewarden/internal/ledger"
	"voicewarden/internal/tracker"
	"voicewarden/internal/votes"
)

// Bot is a Discord bot
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	ledger  *ledger.Ledger
	tally   *votes.Tally
	tracker *tracker.Tracker
	votes   *votes.Coordinator
	notify  *channelNotifier
}

func NewBot(cfg *config.Config, l *ledger.Ledger, tally *votes.Tally) *Bot {
	return &Bot{
		cfg:    cfg,
		ledger: l,
		tally:  tally,
	}
}

// Run connects the bot and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg
	b.configureIntents()

	b.notify = &channelNotifier{session: dg, channelID: b.cfg.LogChannelID}
	b.tracker = tracker.New(b.ledger, b.notify)
	b.votes = votes.NewCoordinator(
		b.tally,
		&sessionMessenger{session: dg},
		&guildModerator{session: dg},
		b.cfg.VoteEmoji,
		b.cfg.MuteDuration,
	)

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onMessageReactionAdd)
	dg.AddHandler(b.onVoiceStateUpdate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	go votes.RunProposalSweeper(ctx, b.tally, b.notify)

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentGuildMessageReactions |
		discordgo.IntentGuildVoiceStates
}

// onReady is called when the bot is ready
func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("username", r.User.Username).Msg("bot connected")
}
