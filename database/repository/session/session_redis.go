package sessionRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"decorquote/models"
	"decorquote/utils"

	"github.com/go-redis/redis/v8"
)

// maxUpdateRetries bounds optimistic retries when two actions race on one session.
const maxUpdateRetries = 5

// RedisSessionRepo implements SessionRepository on Redis.
// Every write refreshes the session TTL.
type RedisSessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepo creates a Redis backed session repository.
func NewRedisSessionRepo(client *redis.Client, ttl time.Duration) SessionRepository {
	return &RedisSessionRepo{client: client, ttl: ttl}
}

func sessionKey(id string) string { return utils.SessionCachePrefix + id }
func lockKey(id string) string    { return utils.SubmitLockPrefix + id }
func noticeKey(id string) string  { return utils.NoticePrefix + id }

func (r *RedisSessionRepo) Create(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepo) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	return decodeSession(data)
}

func (r *RedisSessionRepo) Update(ctx context.Context, id string, fn func(*models.BookingSession) error) (*models.BookingSession, error) {
	key := sessionKey(id)
	var updated *models.BookingSession

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load booking session: %w", err)
		}
		session, err := decodeSession(data)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		out, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal updated booking session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = session
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("failed to update booking session %s: too much contention", id)
}

func (r *RedisSessionRepo) Delete(ctx context.Context, id string) (bool, error) {
	var deleted *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, sessionKey(id))
		pipe.Del(ctx, lockKey(id))
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete booking session: %w", err)
	}
	return deleted.Val() > 0, nil
}

// releaseLockScript deletes the lock only when it still holds the caller's token.
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (r *RedisSessionRepo) AcquireSubmitLock(ctx context.Context, id, owner string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, lockKey(id), owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	return ok, nil
}

func (r *RedisSessionRepo) ReleaseSubmitLock(ctx context.Context, id, owner string) error {
	if err := releaseLockScript.Run(ctx, r.client, []string{lockKey(id)}, owner).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to release submit lock: %w", err)
	}
	return nil
}

func (r *RedisSessionRepo) PutNotice(ctx context.Context, id string, notice models.Notice, ttl time.Duration) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}
	if err := r.client.Set(ctx, noticeKey(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store notice: %w", err)
	}
	return nil
}

func (r *RedisSessionRepo) PopNotice(ctx context.Context, id string) (*models.Notice, error) {
	data, err := r.client.GetDel(ctx, noticeKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load notice: %w", err)
	}
	var n models.Notice
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to parse notice: %w", err)
	}
	return &n, nil
}

func decodeSession(data []byte) (*models.BookingSession, error) {
	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
