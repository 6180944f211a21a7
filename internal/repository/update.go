package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const maxUpdateRetries = 10

var ErrUpdateConflict = errors.New("too many concurrent updates")

// watchAndUpdate - optimistic read-modify-write of the JSON value at key.
// mutate may run more than once when another writer changes the key first.
// A false result from mutate skips the write.
func watchAndUpdate[T any](
	ctx context.Context,
	client *redis.Client,
	key string,
	ttl time.Duration,
	notFound error,
	mutate func(value *T) (bool, error),
) (*T, error) {
	var value *T

	txf := func(tx *redis.Tx) error {
		value = nil

		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return notFound
		}

		if err != nil {
			return fmt.Errorf("failed to get %s: %w", key, err)
		}

		value = new(T)
		if err = json.Unmarshal(data, value); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}

		changed, err := mutate(value)
		if err != nil || !changed {
			return err
		}

		data, err = json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", key, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})

		return err
	}

	for range maxUpdateRetries {
		err := client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return value, err
	}

	return nil, ErrUpdateConflict
}
