package storage

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	Connection *redis.Client
}

type RedisOptions struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func (that RedisOptions) Addr() string {
	return net.JoinHostPort(that.Host, strconv.Itoa(that.Port))
}

// NewRedisStorage - connects and pings once, the session tally is only kept in redis when this succeeds.
func NewRedisStorage(ctx context.Context, options RedisOptions) (*RedisStorage, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     options.Addr(),
		Password: options.Password,
		DB:       options.DB,
	})

	_, err := conn.Ping(ctx).Result()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", options.Addr(), err)
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Close() error {
	return that.Connection.Close()
}
