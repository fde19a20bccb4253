package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RDB stays nil when REDIS_URL is unset; rate limiting is then disabled.
var RDB *redis.Client

func InitRedis() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set, rate limiting disabled")
		return
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Invalid REDIS_URL: %v, rate limiting disabled", err)
		return
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v, rate limiting disabled", err)
		return
	}

	RDB = client
}
