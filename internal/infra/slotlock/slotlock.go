package slotlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrNotAcquired = errors.New("slot lock not acquired")

// Locker protege a seção crítica de criação de agendamento por slot
// (barbeiro + data + horário).
type Locker interface {
	WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// SlotKey monta a chave canônica do lock de um slot.
func SlotKey(barberID uuid.UUID, date, timeOfDay string) string {
	return fmt.Sprintf("lock:slot:%s:%s:%s", barberID, date, timeOfDay)
}

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker usa uma chave Redis por slot, com token próprio para que
// só o dono do lock consiga liberá-lo.
func NewRedisLocker(client *redis.Client, ttl time.Duration) Locker {
	return &redisLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *redisLocker) WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire slot lock: %w", err)
	}
	if !ok {
		return ErrNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release slot lock: %w", err)
	}
	return nil
}

// Noop roda a função sem lock. Usado quando não há Redis configurado;
// a transação e o índice único parcial continuam garantindo o slot.
type Noop struct{}

func (Noop) WithSlotLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
