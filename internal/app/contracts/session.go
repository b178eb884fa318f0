package contracts

import (
	"context"
	"preplan-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
}
