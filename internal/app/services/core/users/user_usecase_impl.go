package users

import (
	"context"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/dto/responses"
	"preplan-service/internal/pkg/exceptions"
	"time"
)

type userUsecase struct {
	UserRepository UserRepository
	SessionService contracts.SessionService
}

func NewUserUsecase(
	userMongoRepository UserRepository,
	sessionService contracts.SessionService,
) UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		SessionService: sessionService,
	}
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	response := buildUserProfile(user)
	return &response, nil
}

func (uc *userUsecase) UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.StudentID != "" {
		user.StudentID = request.StudentID
	}
	user.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	response := buildUserProfile(user)
	return &response, nil
}

func (uc *userUsecase) DeactivateUserBySession(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotFound(nil)
	}

	user.Active = false
	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *userUsecase) ListUsers(ctx context.Context, sessionData string, page, pageSize int) ([]responses.UserProfile, int, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if session.Role != constvars.RoleAdmin {
		return nil, 0, exceptions.ErrNotAuthorized(nil)
	}

	users, total, err := uc.UserRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]responses.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, buildUserProfile(&users[i]))
	}
	return profiles, total, nil
}

func (uc *userUsecase) DeleteUserByID(ctx context.Context, sessionData, userID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if session.Role != constvars.RoleAdmin {
		return exceptions.ErrNotAuthorized(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotFound(nil)
	}

	return uc.UserRepository.DeleteUserByID(ctx, userID)
}

func buildUserProfile(user *models.User) responses.UserProfile {
	return responses.UserProfile{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		StudentID: user.StudentID,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
