package votes

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Notifier posts a line to the bot's log channel.
type Notifier interface {
	Notify(text string) error
}

// RunProposalSweeper drops proposals past their ttl every minute until ctx
// is done. Call from main or app lifecycle.
func RunProposalSweeper(ctx context.Context, tally *Tally, notify Notifier) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for messageID, targetID := range tally.Prune(time.Now()) {
				log.Info().
					Str("message_id", messageID).
					Str("target_id", targetID).
					Msg("vote proposal expired")
				if notify == nil {
					continue
				}
				text := fmt.Sprintf("Vote against <@%s> expired without reaching the threshold.", targetID)
				if err := notify.Notify(text); err != nil {
					log.Warn().Err(err).Msg("failed to post expiry notice")
				}
			}
		}
	}
}
