package storage

import (
	"context"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

const cooldownCapSeconds = 30

// LoginThrottle counts failed password logins per email. Once Threshold
// failures accumulate inside Window, further attempts are locked out for
// min(30, 2^failures) seconds.
type LoginThrottle struct {
	Client    *redis.Client
	Threshold int64
	Window    time.Duration
}

func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{Client: client, Threshold: 3, Window: 15 * time.Minute}
}

func (t *LoginThrottle) failKey(email string) string {
	return "login:fail:" + email
}

func (t *LoginThrottle) lockKey(email string) string {
	return "login:lock:" + email
}

// WaitSeconds returns how long the email is still locked out, 0 if not.
func (t *LoginThrottle) WaitSeconds(ctx context.Context, email string) (int, error) {
	ttl, err := t.Client.TTL(ctx, t.lockKey(email)).Result()
	if err != nil {
		return 0, err
	}
	if ttl <= 0 {
		return 0, nil
	}
	return int(math.Ceil(ttl.Seconds())), nil
}

func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	failures, err := t.Client.Incr(ctx, t.failKey(email)).Result()
	if err != nil {
		return err
	}
	if err := t.Client.Expire(ctx, t.failKey(email), t.Window).Err(); err != nil {
		return err
	}
	if failures < t.Threshold {
		return nil
	}
	return t.Client.Set(ctx, t.lockKey(email), failures, CooldownForFailCount(failures)).Err()
}

func (t *LoginThrottle) RecordSuccess(ctx context.Context, email string) error {
	return t.Client.Del(ctx, t.failKey(email), t.lockKey(email)).Err()
}

func CooldownForFailCount(failures int64) time.Duration {
	seconds := math.Pow(2, float64(failures))
	if seconds > cooldownCapSeconds {
		seconds = cooldownCapSeconds
	}
	return time.Duration(seconds) * time.Second
}
