package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicewarden/internal/config"
)

func TestDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("LOG_CHANNEL_ID", "123")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "datastore.json", cfg.StoragePath)
	assert.Equal(t, "!votemute", cfg.VoteCommand)
	assert.Equal(t, 1, cfg.VoteThreshold)
	assert.Equal(t, 30*time.Minute, cfg.VoteTTL)
	assert.Equal(t, 10*time.Minute, cfg.MuteDuration)
}

func TestMissingTokenFails(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("LOG_CHANNEL_ID", "123")

	_, err := config.New()
	assert.Error(t, err)
}

func TestInvalidThresholdRejected(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("LOG_CHANNEL_ID", "123")
	t.Setenv("VOTE_THRESHOLD", "0")

	_, err := config.New()
	assert.ErrorContains(t, err, "VOTE_THRESHOLD")
}

func TestOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("LOG_CHANNEL_ID", "123")
	t.Setenv("VOTE_THRESHOLD", "3")
	t.Setenv("VOTE_TTL", "0")
	t.Setenv("VOTE_EMOJI", "👍")

	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.VoteThreshold)
	assert.Equal(t, time.Duration(0), cfg.VoteTTL)
	assert.Equal(t, "👍", cfg.VoteEmoji)
}
