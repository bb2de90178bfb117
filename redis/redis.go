package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

func refreshKey(userID uint) string {
	return fmt.Sprintf("refresh:%d", userID)
}

// StoreRefreshToken keeps the user's active refresh token for its
// lifetime; issuing a new one replaces the old.
func StoreRefreshToken(userID uint, token string, ttl time.Duration) error {
	return Client.Set(Ctx, refreshKey(userID), token, ttl).Err()
}

// ValidateRefreshToken checks the presented token against the stored
// one.
func ValidateRefreshToken(userID uint, token string) (bool, error) {
	stored, err := Client.Get(Ctx, refreshKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == token, nil
}

// RevokeRefreshToken drops the stored token at logout.
func RevokeRefreshToken(userID uint) error {
	return Client.Del(Ctx, refreshKey(userID)).Err()
}
