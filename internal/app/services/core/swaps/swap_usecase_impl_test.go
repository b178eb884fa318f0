package swaps

import (
	"context"
	"errors"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSwapRepository struct {
	mock.Mock
}

func (m *MockSwapRepository) CreateSwap(ctx context.Context, swap *models.Swap) (string, error) {
	args := m.Called(ctx, swap)
	return args.String(0), args.Error(1)
}

func (m *MockSwapRepository) FindSwaps(ctx context.Context, status string, page, pageSize int) ([]models.Swap, int, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Swap), args.Int(1), args.Error(2)
}

func (m *MockSwapRepository) FindByID(ctx context.Context, swapID string) (*models.Swap, error) {
	args := m.Called(ctx, swapID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Swap), args.Error(1)
}

func (m *MockSwapRepository) UpdateSwap(ctx context.Context, swap *models.Swap) error {
	args := m.Called(ctx, swap)
	return args.Error(0)
}

func (m *MockSwapRepository) DeleteByID(ctx context.Context, swapID string) error {
	args := m.Called(ctx, swapID)
	return args.Error(0)
}

type MockSectionRepository struct {
	mock.Mock
}

func (m *MockSectionRepository) UpsertSections(ctx context.Context, sections []models.CatalogSection) error {
	args := m.Called(ctx, sections)
	return args.Error(0)
}

func (m *MockSectionRepository) FindSections(ctx context.Context, courseQuery string, page, pageSize int) ([]models.CatalogSection, int, error) {
	args := m.Called(ctx, courseQuery, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.CatalogSection), args.Int(1), args.Error(2)
}

func (m *MockSectionRepository) FindByID(ctx context.Context, sectionID int) (*models.CatalogSection, error) {
	args := m.Called(ctx, sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogSection), args.Error(1)
}

func (m *MockSectionRepository) FindByIDs(ctx context.Context, sectionIDs []int) ([]models.CatalogSection, error) {
	args := m.Called(ctx, sectionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CatalogSection), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockQueuePublisher struct {
	mock.Mock
}

func (m *MockQueuePublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	args := m.Called(ctx, queueName, payload)
	return args.Error(0)
}

func newSwapTestUsecase(
	swapRepo *MockSwapRepository,
	sectionRepo *MockSectionRepository,
	sessionService *MockSessionService,
	queuePublisher *MockQueuePublisher,
) SwapUsecase {
	return NewSwapUsecase(swapRepo, sectionRepo, sessionService, queuePublisher, zap.NewNop())
}

func TestSwapUsecase_CreateSwap(t *testing.T) {
	authorSession := &models.Session{SessionID: "sess-1", UserID: "user-1", Email: "rafi@g.bracu.ac.bd", Role: "student"}

	t.Run("Creates a pending swap and publishes the event", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(authorSession, nil)
		sectionRepo.On("FindByID", mock.Anything, 101).Return(&models.CatalogSection{
			SectionID:  101,
			CourseCode: "CSE110",
			Capacity:   35,
		}, nil)
		swapRepo.On("CreateSwap", mock.Anything, mock.AnythingOfType("*models.Swap")).Return("swap-1", nil)
		queuePublisher.On("Publish", mock.Anything, constvars.QueueSwapEvents, mock.Anything).Return(nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		result, err := uc.CreateSwap(context.Background(), "session-json", &requests.CreateSwap{
			OfferSectionID: 101,
			AskSectionIDs:  []int{102, 103},
			Note:           "prefer the morning slot",
		})

		assert.NoError(t, err)
		assert.Equal(t, "swap-1", result.SwapID)
		assert.Equal(t, constvars.SwapStatusPending, result.Status)
		assert.NotNil(t, result.OfferSection)
		assert.Equal(t, "CSE110", result.OfferSection.CourseCode)
		queuePublisher.AssertExpectations(t)
	})

	t.Run("Rejects an offer section missing from the catalog", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(authorSession, nil)
		sectionRepo.On("FindByID", mock.Anything, 999).Return(nil, nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		_, err := uc.CreateSwap(context.Background(), "session-json", &requests.CreateSwap{
			OfferSectionID: 999,
			AskSectionIDs:  []int{102},
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
		swapRepo.AssertNotCalled(t, "CreateSwap", mock.Anything, mock.Anything)
	})

	t.Run("Succeeds even when the event publish fails", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(authorSession, nil)
		sectionRepo.On("FindByID", mock.Anything, 101).Return(&models.CatalogSection{SectionID: 101}, nil)
		swapRepo.On("CreateSwap", mock.Anything, mock.AnythingOfType("*models.Swap")).Return("swap-1", nil)
		queuePublisher.On("Publish", mock.Anything, constvars.QueueSwapEvents, mock.Anything).Return(errors.New("broker down"))

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		result, err := uc.CreateSwap(context.Background(), "session-json", &requests.CreateSwap{
			OfferSectionID: 101,
			AskSectionIDs:  []int{102},
		})

		assert.NoError(t, err)
		assert.Equal(t, "swap-1", result.SwapID)
	})
}

func TestSwapUsecase_ExpressInterest(t *testing.T) {
	interestedSession := &models.Session{SessionID: "sess-2", UserID: "user-2", Email: "nusrat@g.bracu.ac.bd", Role: "student"}

	t.Run("Records interest once", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(interestedSession, nil)
		swapRepo.On("FindByID", mock.Anything, "swap-1").Return(&models.Swap{
			ID:             "swap-1",
			AuthorID:       "user-1",
			AuthorEmail:    "rafi@g.bracu.ac.bd",
			OfferSectionID: 101,
			Status:         constvars.SwapStatusPending,
		}, nil)
		swapRepo.On("UpdateSwap", mock.Anything, mock.AnythingOfType("*models.Swap")).Return(nil)
		sectionRepo.On("FindByID", mock.Anything, 101).Return(nil, nil)
		queuePublisher.On("Publish", mock.Anything, constvars.QueueSwapEvents, mock.Anything).Return(nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		result, err := uc.ExpressInterest(context.Background(), "session-json", "swap-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"nusrat@g.bracu.ac.bd"}, result.InterestedUsers)
		swapRepo.AssertExpectations(t)
	})

	t.Run("Is idempotent for a repeated interest", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(interestedSession, nil)
		swapRepo.On("FindByID", mock.Anything, "swap-1").Return(&models.Swap{
			ID:              "swap-1",
			AuthorID:        "user-1",
			OfferSectionID:  101,
			Status:          constvars.SwapStatusPending,
			InterestedUsers: []string{"nusrat@g.bracu.ac.bd"},
		}, nil)
		sectionRepo.On("FindByID", mock.Anything, 101).Return(nil, nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		result, err := uc.ExpressInterest(context.Background(), "session-json", "swap-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"nusrat@g.bracu.ac.bd"}, result.InterestedUsers)
		swapRepo.AssertNotCalled(t, "UpdateSwap", mock.Anything, mock.Anything)
		queuePublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Refuses a closed swap", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(interestedSession, nil)
		swapRepo.On("FindByID", mock.Anything, "swap-1").Return(&models.Swap{
			ID:     "swap-1",
			Status: constvars.SwapStatusAccepted,
		}, nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		_, err := uc.ExpressInterest(context.Background(), "session-json", "swap-1")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})
}

func TestSwapUsecase_UpdateSwapStatus(t *testing.T) {
	authorSession := &models.Session{SessionID: "sess-1", UserID: "user-1", Email: "rafi@g.bracu.ac.bd", Role: "student"}

	t.Run("Author closes the swap", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(authorSession, nil)
		swapRepo.On("FindByID", mock.Anything, "swap-1").Return(&models.Swap{
			ID:             "swap-1",
			AuthorID:       "user-1",
			OfferSectionID: 101,
			Status:         constvars.SwapStatusPending,
		}, nil)
		swapRepo.On("UpdateSwap", mock.Anything, mock.AnythingOfType("*models.Swap")).Return(nil)
		sectionRepo.On("FindByID", mock.Anything, 101).Return(nil, nil)
		queuePublisher.On("Publish", mock.Anything, constvars.QueueSwapEvents, mock.Anything).Return(nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		result, err := uc.UpdateSwapStatus(context.Background(), "session-json", "swap-1", &requests.UpdateSwapStatus{
			Status: constvars.SwapStatusAccepted,
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.SwapStatusAccepted, result.Status)
	})

	t.Run("Only the author may change the status", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
			UserID: "user-2", Email: "nusrat@g.bracu.ac.bd", Role: "student",
		}, nil)
		swapRepo.On("FindByID", mock.Anything, "swap-1").Return(&models.Swap{
			ID:       "swap-1",
			AuthorID: "user-1",
			Status:   constvars.SwapStatusPending,
		}, nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		_, err := uc.UpdateSwapStatus(context.Background(), "session-json", "swap-1", &requests.UpdateSwapStatus{
			Status: constvars.SwapStatusCancelled,
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 403, customErr.StatusCode)
		swapRepo.AssertNotCalled(t, "UpdateSwap", mock.Anything, mock.Anything)
	})
}

func TestSwapUsecase_DeleteSwap(t *testing.T) {
	t.Run("Admin may delete any swap", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
			UserID: "admin-1", Email: "admin@g.bracu.ac.bd", Role: constvars.RoleAdmin,
		}, nil)
		swapRepo.On("FindByID", mock.Anything, "swap-1").Return(&models.Swap{
			ID:       "swap-1",
			AuthorID: "user-1",
			Status:   constvars.SwapStatusPending,
		}, nil)
		swapRepo.On("DeleteByID", mock.Anything, "swap-1").Return(nil)
		queuePublisher.On("Publish", mock.Anything, constvars.QueueSwapEvents, mock.Anything).Return(nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		err := uc.DeleteSwap(context.Background(), "session-json", "swap-1")

		assert.NoError(t, err)
		swapRepo.AssertExpectations(t)
	})

	t.Run("Strangers may not delete a swap", func(t *testing.T) {
		swapRepo := new(MockSwapRepository)
		sectionRepo := new(MockSectionRepository)
		sessionService := new(MockSessionService)
		queuePublisher := new(MockQueuePublisher)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
			UserID: "user-3", Email: "tanvir@g.bracu.ac.bd", Role: "student",
		}, nil)
		swapRepo.On("FindByID", mock.Anything, "swap-1").Return(&models.Swap{
			ID:       "swap-1",
			AuthorID: "user-1",
			Status:   constvars.SwapStatusPending,
		}, nil)

		uc := newSwapTestUsecase(swapRepo, sectionRepo, sessionService, queuePublisher)
		err := uc.DeleteSwap(context.Background(), "session-json", "swap-1")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 403, customErr.StatusCode)
		swapRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}
