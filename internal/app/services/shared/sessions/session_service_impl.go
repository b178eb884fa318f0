package sessions

import (
	"context"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	return svc.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+session.SessionID, session, exp)
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}
