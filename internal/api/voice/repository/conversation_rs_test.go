package voiceRepository

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	"VoiceCommerce/pkg/redis"

	"github.com/sirupsen/logrus"
)

type cachedValue struct {
	data    []byte
	version int64
	ttl     time.Duration
}

type fakeCache struct {
	values  map[string]cachedValue
	readErr error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]cachedValue{}}
}

func (f *fakeCache) GetVersioned(_ context.Context, key string) ([]byte, int64, error) {
	if f.readErr != nil {
		return nil, 0, f.readErr
	}
	v, ok := f.values[key]
	if !ok {
		return nil, 0, redis.ErrCacheMiss
	}
	return v.data, v.version, nil
}

func (f *fakeCache) SetVersioned(_ context.Context, key string, data []byte, expected int64, ttl time.Duration) (int64, error) {
	f.sets++
	if f.values[key].version != expected {
		return 0, redis.ErrVersionConflict
	}
	next := expected + 1
	f.values[key] = cachedValue{data: data, version: next, ttl: ttl}
	return next, nil
}

func (f *fakeCache) Ping(context.Context) error { return nil }
func (f *fakeCache) Close() error               { return nil }

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestConversationStoreGetFreshDoesNotWrite(t *testing.T) {
	cache := newFakeCache()
	store := NewConversationStore(cache, 30*time.Minute, newTestLogger())

	convCtx, err := store.Get(context.Background(), "s1", "a1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if convCtx.ConversationTurn != 0 || convCtx.InProductCreation() || convCtx.Version != 0 {
		t.Fatalf("Get() = %+v, want fresh context", convCtx)
	}
	if cache.sets != 0 {
		t.Fatalf("Get() wrote to cache %d times", cache.sets)
	}
}

func TestConversationStoreRoundTrip(t *testing.T) {
	cache := newFakeCache()
	store := NewConversationStore(cache, 30*time.Minute, newTestLogger())
	ctx := context.Background()

	convCtx, _ := store.Get(ctx, "s1", "a1")
	convCtx.ConversationTurn = 1
	convCtx.LastIntent = "product_create"
	convCtx.ProductCreation = entity.AwaitingCategory("clay pot")

	if err := store.Put(ctx, convCtx); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if convCtx.Version != 1 {
		t.Fatalf("Version after Put = %d, want 1", convCtx.Version)
	}
	if got := cache.values["voice:session:s1"].ttl; got != 30*time.Minute {
		t.Fatalf("ttl = %v, want 30m", got)
	}

	loaded, err := store.Get(ctx, "s1", "a1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if loaded.ConversationTurn != 1 || loaded.Version != 1 {
		t.Fatalf("loaded = %+v", loaded)
	}
	if loaded.ProductCreation == nil || loaded.ProductCreation.Step != entity.CreationStepCategory || loaded.ProductCreation.Data.Name != "clay pot" {
		t.Fatalf("loaded sub-state = %+v", loaded.ProductCreation)
	}
}

func TestConversationStorePutConflict(t *testing.T) {
	cache := newFakeCache()
	store := NewConversationStore(cache, time.Minute, newTestLogger())
	ctx := context.Background()

	first, _ := store.Get(ctx, "s1", "a1")
	second, _ := store.Get(ctx, "s1", "a1")

	first.ConversationTurn = 1
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("first Put() error = %v", err)
	}

	second.ConversationTurn = 1
	if err := store.Put(ctx, second); !errors.Is(err, voice.ErrContextConflict) {
		t.Fatalf("second Put() error = %v, want ErrContextConflict", err)
	}
}

func TestConversationStoreOwnership(t *testing.T) {
	cache := newFakeCache()
	store := NewConversationStore(cache, time.Minute, newTestLogger())
	ctx := context.Background()

	convCtx, _ := store.Get(ctx, "s1", "a1")
	if err := store.Put(ctx, convCtx); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if _, err := store.Get(ctx, "s1", "intruder"); !errors.Is(err, voice.ErrSessionOwnership) {
		t.Fatalf("Get() error = %v, want ErrSessionOwnership", err)
	}
}

func TestConversationStoreDiscardsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{broken"},
		{name: "illegal sub-state", data: `{"session_id":"s1","artisan_id":"a1","conversation_turn":4,"product_creation":{"step":"price","data":{"name":"pot"}}}`},
		{name: "unknown step", data: `{"session_id":"s1","artisan_id":"a1","product_creation":{"step":"colour"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newFakeCache()
			cache.values["voice:session:s1"] = cachedValue{data: []byte(tt.data), version: 7}
			store := NewConversationStore(cache, time.Minute, newTestLogger())

			convCtx, err := store.Get(context.Background(), "s1", "a1")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if convCtx.ConversationTurn != 0 || convCtx.InProductCreation() {
				t.Fatalf("Get() = %+v, want fresh context", convCtx)
			}
			if convCtx.Version != 7 {
				t.Fatalf("Version = %d, want cached version 7", convCtx.Version)
			}

			if err := store.Put(context.Background(), convCtx); err != nil {
				t.Fatalf("Put() over discarded payload error = %v", err)
			}
		})
	}
}

func TestConversationStoreUnavailable(t *testing.T) {
	cache := newFakeCache()
	cache.readErr = errors.New("connection refused")
	store := NewConversationStore(cache, time.Minute, newTestLogger())

	if _, err := store.Get(context.Background(), "s1", "a1"); !errors.Is(err, voice.ErrSessionUnavailable) {
		t.Fatalf("Get() error = %v, want ErrSessionUnavailable", err)
	}
}
