package auth

import (
	"context"
	"preplan-service/internal/app/config"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/app/models"
	"preplan-service/internal/app/services/core/users"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/dto/responses"
	"preplan-service/internal/pkg/exceptions"
	"preplan-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
)

type authUsecase struct {
	UserRepository users.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(
	userMongoRepository users.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository: userMongoRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordsDoNotMatch(nil)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Email:     request.Email,
		FullName:  request.FullName,
		StudentID: request.StudentID,
		Password:  hashedPassword,
		Role:      constvars.RoleStudent,
		Active:    true,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{
		UserID: userID,
		Email:  user.Email,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !user.Active {
		return nil, exceptions.ErrAccountDeactivated(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionExpiry := time.Duration(uc.InternalConfig.App.SessionExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(sessionExpiry),
	}
	if err := uc.SessionService.CreateSession(ctx, session, sessionExpiry); err != nil {
		return nil, err
	}

	tokenExpiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, tokenExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}
