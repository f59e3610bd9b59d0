package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DBC-Works/swiki/lib/exception"
	"github.com/DBC-Works/swiki/lib/models/page"
	"github.com/redis/go-redis/v9"
)

const redisTimeout = 5 * time.Second

// RedisDB stores the page set as one string value.
type RedisDB struct {
	client *redis.Client
	prefix string
}

func (d *RedisDB) key() string {
	return d.prefix + PageSetKey
}

func (d *RedisDB) GetPageSet() (*page.PageSet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	serialized, err := d.client.Get(ctx, d.key()).Result()
	if errors.Is(err, redis.Nil) {
		return emptyPageSet(), nil
	}
	if err != nil {
		return nil, exception.NewDatabaseError("error reading page set", err)
	}

	return decodePageSet(serialized)
}

func (d *RedisDB) SavePageSet(pageSet page.PageSet) error {
	serialized, err := encodePageSet(pageSet)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := d.client.Set(ctx, d.key(), serialized, 0).Err(); err != nil {
		return exception.NewDatabaseError("error saving page set", err)
	}
	return nil
}

func (d *RedisDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return d.client.Ping(ctx).Err()
}

func (d *RedisDB) Close() error {
	return d.client.Close()
}

// NewRedisDB connects to the server at redisURL. Every key is prefixed with prefix.
func NewRedisDB(redisURL string, prefix string) (*RedisDB, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	store := NewRedisDBWithClient(redis.NewClient(opts), prefix)
	if err := store.Ping(); err != nil {
		store.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return store, nil
}

func NewRedisDBWithClient(client *redis.Client, prefix string) *RedisDB {
	return &RedisDB{
		client: client,
		prefix: prefix,
	}
}

var _ DataStore = (*RedisDB)(nil)
