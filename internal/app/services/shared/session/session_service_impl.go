package session

import (
	"arogya-service/internal/app/models"
	sharedredis "arogya-service/internal/app/services/shared/redis"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	ResolveSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type sessionService struct {
	RedisRepository sharedredis.RedisRepository
}

func NewSessionService(redisRepository sharedredis.RedisRepository) SessionService {
	return &sessionService{RedisRepository: redisRepository}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return s.RedisRepository.Set(ctx, session.SessionID, session, ttl)
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, exceptions.ErrSessionNotFound(err)
	}
	return &session, nil
}

// ResolveSession returns the serialized session for an ID, or an auth error
// when the session is missing or expired.
func (s *sessionService) ResolveSession(ctx context.Context, sessionID string) (string, error) {
	data, err := s.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if data == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return data, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionID)
}
