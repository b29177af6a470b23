package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrCacheMiss       = errors.New("cache miss")
	ErrVersionConflict = errors.New("cached value was modified concurrently")
)

const (
	versionField = "version"
	dataField    = "data"
)

// IRedis stores versioned values. Every write carries the version the caller
// read; the write only lands if nobody else wrote in between.
type IRedis interface {
	GetVersioned(ctx context.Context, key string) ([]byte, int64, error)
	SetVersioned(ctx context.Context, key string, data []byte, expectedVersion int64, expiration time.Duration) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return NewFromClient(client)
}

func NewFromClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

func (r *redisClient) GetVersioned(ctx context.Context, key string) ([]byte, int64, error) {
	values, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error reading key %s: %v", key, err))
		return nil, 0, err
	}
	if len(values) == 0 {
		return nil, 0, ErrCacheMiss
	}

	version, err := strconv.ParseInt(values[versionField], 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid version for key %s: %w", key, err)
	}

	return []byte(values[dataField]), version, nil
}

// SetVersioned replaces the value under key if its stored version still equals
// expectedVersion (0 for a key that does not exist yet) and resets the
// expiration. It returns the new version.
func (r *redisClient) SetVersioned(ctx context.Context, key string, data []byte, expectedVersion int64, expiration time.Duration) (int64, error) {
	next := expectedVersion + 1

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, versionField).Int64()
		if errors.Is(err, redis.Nil) {
			current = 0
		} else if err != nil {
			return err
		}

		if current != expectedVersion {
			return ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, versionField, next, dataField, data)
			pipe.Expire(ctx, key, expiration)
			return nil
		})
		return err
	}, key)

	switch {
	case errors.Is(err, redis.TxFailedErr), errors.Is(err, ErrVersionConflict):
		logrus.Debug(fmt.Sprintf("Version conflict writing key %s at version %d", key, expectedVersion))
		return 0, ErrVersionConflict
	case err != nil:
		logrus.Error(fmt.Sprintf("Error writing key %s: %v", key, err))
		return 0, err
	}

	return next, nil
}

func (r *redisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
