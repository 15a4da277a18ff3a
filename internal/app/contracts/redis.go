package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Ping(ctx context.Context) error
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// GetInto unmarshals the JSON value stored at key. It reports false when
	// the key does not exist.
	GetInto(ctx context.Context, key string, dest interface{}) (bool, error)
	// GetDelete atomically reads and removes key. Missing keys yield "".
	GetDelete(ctx context.Context, key string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Increment(ctx context.Context, key string) error
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// DeleteIfEquals atomically removes key when it holds value. It reports
	// false only when key holds a different value; a missing key counts as
	// released.
	DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error)
	// AddSetMember adds member to the set at key and resets the set TTL.
	AddSetMember(ctx context.Context, key, member string, exp time.Duration) error
	RemoveSetMember(ctx context.Context, key, member string) error
	SetMembers(ctx context.Context, key string) ([]string, error)
}
