package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance
var RedisClient *redis.Client

//Accessed as config.RedisClient in other files

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
}

// PingRedis disables Redis when it is configured but not reachable.
func PingRedis() {
	status := "Redis not configured, sessions kept in memory."
	if RedisClient != nil {
		if err := RedisClient.Ping(RedisCtx()).Err(); err == nil {
			status = "Redis connection successful, sessions kept in Redis."
		} else {
			RedisClient = nil
			status = "Redis configured but not reachable, sessions kept in memory."
		}
	}
	log.Println(status)
}

func RedisCtx() context.Context {
	return context.Background()
}
