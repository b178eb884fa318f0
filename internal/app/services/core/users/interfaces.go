package users

import (
	"context"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error)
	UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error)
	DeactivateUserBySession(ctx context.Context, sessionData string) error
	ListUsers(ctx context.Context, sessionData string, page, pageSize int) ([]responses.UserProfile, int, error)
	DeleteUserByID(ctx context.Context, sessionData, userID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.User, int, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	DeleteUserByID(ctx context.Context, userID string) error
}
