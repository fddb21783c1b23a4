package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	sessionTokenPrefix = "login:user:token"
	sessionTokenExpire = 60 * 30
)

// SessionRepository 保存每个用户当前有效的 access token，
// 实现单点登录：新登录顶掉旧 token
type SessionRepository struct{}

func (r *SessionRepository) AddUserToken(usrID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", sessionTokenPrefix, usrID)
	if err := Client.Set(context.Background(), key, token, time.Second*sessionTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetUserToken(usrID uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", sessionTokenPrefix, usrID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// ExtendUserToken 每次鉴权通过后顺延过期时间
func (r *SessionRepository) ExtendUserToken(usrID uint64) error {
	key := fmt.Sprintf("%s:%d", sessionTokenPrefix, usrID)
	_, err := Client.Expire(context.Background(), key, time.Second*sessionTokenExpire).Result()
	if err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) DeleteUserToken(usrID uint64) error {
	key := fmt.Sprintf("%s:%d", sessionTokenPrefix, usrID)
	err := Client.Del(context.Background(), key).Err()
	if err != nil {
		return ErrTokenDeleted
	}
	return nil
}
