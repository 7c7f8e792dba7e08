// /internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	// LogChannelID is where join/leave notices, reaction audit lines and
	// operator-facing errors are posted.
	LogChannelID string `env:"LOG_CHANNEL_ID,required,notEmpty"`

	VoteCommand   string        `env:"VOTE_COMMAND" envDefault:"!votemute"`
	VoteEmoji     string        `env:"VOTE_EMOJI" envDefault:"🔨"`
	VoteThreshold int           `env:"VOTE_THRESHOLD" envDefault:"1"`
	VoteTTL       time.Duration `env:"VOTE_TTL" envDefault:"30m"` // 0 disables expiry
	MuteDuration  time.Duration `env:"MUTE_DURATION" envDefault:"10m"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, falling back to system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.VoteThreshold < 1 {
		return nil, fmt.Errorf("VOTE_THRESHOLD must be at least 1, got %d", cfg.VoteThreshold)
	}
	if cfg.MuteDuration <= 0 {
		return nil, fmt.Errorf("MUTE_DURATION must be positive, got %s", cfg.MuteDuration)
	}

	return &cfg, nil
}
