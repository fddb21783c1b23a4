package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	emailCodePrefix     = "email:code"

	// 两阶段键：先写 pending，邮件发送成功后转 confirmed，
	// 避免邮件没发出去却留下可用验证码
	pendingSuffix   = "pending"
	confirmedSuffix = "confirmed"
)

var (
	ErrEmailNotFound       = errors.New("email code not found")
	ErrEmailCodeDelFailed  = errors.New("email code delete failed")
	ErrCodePendingFailed   = errors.New("code pending failed")
	ErrCodeConfirmedFailed = errors.New("code confirmed failed")
)

type EmailRepository struct{}

func pendingKey(scope, email string) string {
	return fmt.Sprintf("%s:%s:%s:%s", emailCodePrefix, scope, pendingSuffix, email)
}

func confirmedKey(scope, email string) string {
	return fmt.Sprintf("%s:%s:%s:%s", emailCodePrefix, scope, confirmedSuffix, email)
}

func (e *EmailRepository) SetPending(scope, email, code string) error {
	if err := Client.Set(context.Background(), pendingKey(scope, email), code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrCodePendingFailed
	}
	return nil
}

// ConfirmPending 用 lua 原子地把 pending 转为 confirmed：取值+写目标+设 TTL+删源
func (e *EmailRepository) ConfirmPending(scope, email string) error {
	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
redis.call("SET", KEYS[2], val, "PX", ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`
	px := int64(DefaultEmailCodeTTL / time.Millisecond)
	res := Client.Eval(context.Background(), script,
		[]string{pendingKey(scope, email), confirmedKey(scope, email)}, px)
	if err := res.Err(); err != nil {
		return ErrCodeConfirmedFailed
	}
	ok, _ := res.Int()
	if ok != 1 {
		return ErrCodeConfirmedFailed
	}
	return nil
}

// DeletePending 幂等删除
func (e *EmailRepository) DeletePending(scope, email string) error {
	if err := Client.Del(context.Background(), pendingKey(scope, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}

func (e *EmailRepository) GetConfirmed(scope, email string) (string, error) {
	val, err := Client.Get(context.Background(), confirmedKey(scope, email)).Result()
	if err != nil {
		return "", ErrEmailNotFound
	}
	return val, nil
}

func (e *EmailRepository) DeleteConfirmed(scope, email string) error {
	if err := Client.Del(context.Background(), confirmedKey(scope, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}
