package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
)

// Init 初始化客户端并 Ping 一次确认可用
func Init(addr, password string, db int) error {
	Client = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return Client.Ping(ctx).Err()
}

func Healthy(ctx context.Context) bool {
	if Client == nil {
		return false
	}
	return Client.Ping(ctx).Err() == nil
}

func Close() error {
	if Client == nil {
		return nil
	}
	return Client.Close()
}
