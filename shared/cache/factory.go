package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// NewStore returns a Redis-backed Store when addr is set and reachable,
// and falls back to the in-memory store otherwise. The fallback keeps
// the server usable on a workstation without Redis; invalidation then
// only covers the local process.
func NewStore(ctx context.Context, addr, password string, db int) Store {
	if addr == "" {
		log.Info().Msg("No redis address configured, using in-memory cache")
		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, falling back to in-memory cache")
		return NewMemoryStore()
	}

	log.Info().Str("addr", addr).Msg("Connected to redis cache")
	return NewRedisStore(client)
}
