package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/warden-inc/warden/internal/domain/session"
)

const (
	fieldToken     = "token"
	fieldActive    = "active"
	fieldLastLogin = "last_login"
)

// invalidateScript clears the token only when the hash exists, so logout never creates a record.
var invalidateScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('HDEL', KEYS[1], 'token')
	redis.call('HSET', KEYS[1], 'active', '0')
	return 1
end
return 0
`)

// RedisSessionStore keeps the per-account session record in a redis hash with no TTL.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore stores records under "<prefix>:session:<accountID>".
func NewRedisSessionStore(client *redis.Client, prefix string) session.Repository {
	return &RedisSessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisSessionStore) Get(ctx context.Context, accountID uint) (*session.Session, error) {
	values, err := s.client.HGetAll(ctx, s.buildKey(accountID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session from redis: %w", err)
	}
	if len(values) == 0 {
		return nil, session.ErrSessionNotFound
	}

	sess := &session.Session{
		AccountID: accountID,
		IsActive:  values[fieldActive] == "1",
	}
	if token, ok := values[fieldToken]; ok {
		sess.SessionToken = &token
	}
	if raw := values[fieldLastLogin]; raw != "" {
		nanos, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt last_login for account %d: %w", accountID, err)
		}
		sess.LastLogin = time.Unix(0, nanos).UTC()
	}
	return sess, nil
}

func (s *RedisSessionStore) Upsert(ctx context.Context, accountID uint, sessionToken string, lastLogin time.Time) error {
	err := s.client.HSet(ctx, s.buildKey(accountID),
		fieldToken, sessionToken,
		fieldActive, "1",
		fieldLastLogin, strconv.FormatInt(lastLogin.UnixNano(), 10),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Invalidate(ctx context.Context, accountID uint) error {
	if err := invalidateScript.Run(ctx, s.client, []string{s.buildKey(accountID)}).Err(); err != nil {
		return fmt.Errorf("failed to invalidate session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) buildKey(accountID uint) string {
	return fmt.Sprintf("%s:session:%d", s.prefix, accountID)
}
