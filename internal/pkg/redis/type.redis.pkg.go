package redis

import (
	"context"
	"time"

	_redis "github.com/redis/go-redis/v9"
)

// NilType is returned by go-redis when a key does not exist.
var NilType = _redis.Nil

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	PoolSize int
}

type Client struct {
	*_redis.Client
	ctx    context.Context
	cancel context.CancelFunc
	config *Config
}

// IRedis is the key-value contract the rest of the application depends on.
// Absent keys read back as the zero value, never as an error.
type IRedis interface {
	Set(key string, value any, expiration time.Duration) error
	Get(key string) (string, error)
	Del(keys ...string) error
	Expire(key string, expiration time.Duration) error
	Close() error
}
