package voiceRepository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"
	"VoiceCommerce/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const sessionKeyPrefix = "voice:session:"

// IConversationStore keeps one ConversationContext per session in the session
// cache. Reads never extend the expiration; every Put slides it.
type IConversationStore interface {
	Get(ctx context.Context, sessionID, artisanID string) (*entity.ConversationContext, error)
	Put(ctx context.Context, convCtx *entity.ConversationContext) error
}

type conversationStore struct {
	cache redis.IRedis
	ttl   time.Duration
	log   *logrus.Logger
	now   func() time.Time
}

func NewConversationStore(cache redis.IRedis, ttl time.Duration, log *logrus.Logger) IConversationStore {
	return &conversationStore{
		cache: cache,
		ttl:   ttl,
		log:   log,
		now:   time.Now,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *conversationStore) Get(ctx context.Context, sessionID, artisanID string) (*entity.ConversationContext, error) {
	requestID := contextPkg.GetRequestID(ctx)

	data, version, err := s.cache.GetVersioned(ctx, sessionKey(sessionID))
	if errors.Is(err, redis.ErrCacheMiss) {
		return entity.NewConversationContext(sessionID, artisanID, s.now()), nil
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to read conversation context")
		return nil, fmt.Errorf("%w: %v", voice.ErrSessionUnavailable, err)
	}

	var convCtx entity.ConversationContext
	if err := jsoniter.Unmarshal(data, &convCtx); err != nil || convCtx.ProductCreation.Valid() != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
		}).Warn("Discarding unreadable conversation context")

		fresh := entity.NewConversationContext(sessionID, artisanID, s.now())
		fresh.Version = version
		return fresh, nil
	}

	if convCtx.ArtisanID != "" && convCtx.ArtisanID != artisanID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"artisan_id": artisanID,
		}).Warn("Session belongs to another artisan")
		return nil, voice.ErrSessionOwnership
	}

	convCtx.SessionID = sessionID
	convCtx.ArtisanID = artisanID
	convCtx.Version = version

	return &convCtx, nil
}

// Put overwrites the whole context if nobody wrote the session since it was
// read. On success convCtx.Version moves to the stored version.
func (s *conversationStore) Put(ctx context.Context, convCtx *entity.ConversationContext) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := convCtx.ProductCreation.Valid(); err != nil {
		return err
	}

	data, err := jsoniter.Marshal(convCtx)
	if err != nil {
		return fmt.Errorf("encode conversation context: %w", err)
	}

	version, err := s.cache.SetVersioned(ctx, sessionKey(convCtx.SessionID), data, convCtx.Version, s.ttl)
	if errors.Is(err, redis.ErrVersionConflict) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": convCtx.SessionID,
			"version":    convCtx.Version,
		}).Warn("Conversation context changed concurrently")
		return voice.ErrContextConflict
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": convCtx.SessionID,
			"error":      err.Error(),
		}).Error("Failed to write conversation context")
		return fmt.Errorf("%w: %v", voice.ErrSessionUnavailable, err)
	}

	convCtx.Version = version
	return nil
}
