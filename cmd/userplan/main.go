// Command userplan grants or revokes premium access for a user by editing the
// cached entitlement snapshot in Redis.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yog-patel/home-designer-ai-app/internal/entitlement"
	"github.com/yog-patel/home-designer-ai-app/internal/infra"
)

func main() {
	_ = godotenv.Load()

	var (
		userID  = flag.String("user", "", "user id to modify (required)")
		grant   = flag.Bool("grant", false, "grant premium")
		revoke  = flag.Bool("revoke", false, "revoke premium")
		expires = flag.String("expires", "", "premium expiry as RFC 3339 timestamp (optional, grant only)")
		show    = flag.Bool("show", false, "print the current snapshot and exit")
	)
	flag.Parse()

	logger := infra.NewLogger(os.Getenv("APP_ENV"))

	if *userID == "" {
		logger.Fatal().Msg("-user is required")
	}
	if !*show && *grant == *revoke {
		logger.Fatal().Msg("exactly one of -grant or -revoke is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		logger.Fatal().Msg("REDIS_URL is required")
	}
	store, err := entitlement.NewRedisStore(redisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, _, err := store.Snapshot(ctx, *userID)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read snapshot")
	}
	state.UserID = *userID

	if *show {
		fmt.Printf("user=%s designs_generated=%d premium=%t expires=%v\n",
			state.UserID, state.DesignsGenerated, state.Premium, state.PremiumExpiresAt)
		return
	}

	if *grant {
		state.Premium = true
		state.PremiumExpiresAt = nil
		if *expires != "" {
			at, err := time.Parse(time.RFC3339, *expires)
			if err != nil {
				logger.Fatal().Err(err).Msg("invalid -expires timestamp")
			}
			state.PremiumExpiresAt = &at
		}
	} else {
		state.Premium = false
		state.PremiumExpiresAt = nil
	}
	state.UpdatedAt = time.Now()

	if err := store.SetSnapshot(ctx, state); err != nil {
		logger.Fatal().Err(err).Msg("failed to write snapshot")
	}

	logger.Info().
		Str("user_id", state.UserID).
		Bool("premium", state.Premium).
		Msg("entitlement snapshot updated")
}
