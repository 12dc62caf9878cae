package database

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"cinema_rooms/config"
)

var Redis *redis.Client

// ConnectRedis opens the Redis connection used for room read caching. The
// application degrades gracefully when Redis is unreachable: Redis stays
// nil and callers skip the cache.
func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if raw := config.Config("REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			db = parsed
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, room cache disabled: %v", addr, err)
		return
	}
	Redis = client
	log.Println("Connection Opened to Redis")
}
