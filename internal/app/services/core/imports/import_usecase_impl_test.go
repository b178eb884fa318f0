package imports

import (
	"context"
	"io"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockFacultyRepository struct {
	mock.Mock
}

func (m *MockFacultyRepository) UpsertFaculty(ctx context.Context, faculty *models.Faculty) error {
	args := m.Called(ctx, faculty)
	return args.Error(0)
}

func (m *MockFacultyRepository) FindAll(ctx context.Context) ([]models.Faculty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Faculty), args.Error(1)
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

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, payload io.Reader, size int64) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, payload, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func TestImportUsecase_ImportFacultyCSV(t *testing.T) {
	adminSession := &models.Session{SessionID: "sess-1", UserID: "admin-1", Email: "admin@g.bracu.ac.bd", Role: constvars.RoleAdmin}

	t.Run("Upserts valid rows and skips the header", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		sessionService := new(MockSessionService)
		storage := new(MockStorage)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(adminSession, nil)
		facultyRepo.On("UpsertFaculty", mock.Anything, mock.AnythingOfType("*models.Faculty")).Return(nil)
		storage.On("EnsureBucket", mock.Anything, "imports").Return(nil)
		storage.On("UploadObject", mock.Anything, "imports", mock.AnythingOfType("string"), constvars.MIMETextCSV, mock.Anything, mock.AnythingOfType("int64")).Return("etag", nil)

		payload := []byte("facultyName,email,imgURL\n" +
			"Annajiat Alim Rasel,annajiat@bracu.ac.bd,https://cdn.example.com/annajiat.jpg\n" +
			"Matin Saad Abdullah,MSA@bracu.ac.bd,\n" +
			",missing-name@bracu.ac.bd,\n")

		uc := NewImportUsecase(facultyRepo, sessionService, storage, "imports", zap.NewNop())
		result, err := uc.ImportFacultyCSV(context.Background(), "session-json", "faculty.csv", payload)

		assert.NoError(t, err)
		assert.Equal(t, 4, result.TotalRows)
		assert.Equal(t, 2, result.Upserted)
		assert.Equal(t, 2, result.SkippedRows)
		assert.Contains(t, result.ArchiveKey, "faculty/")
		assert.Contains(t, result.ArchiveKey, "faculty.csv")

		facultyRepo.AssertNumberOfCalls(t, "UpsertFaculty", 2)
		storage.AssertExpectations(t)
	})

	t.Run("Lowercases emails before upserting", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		sessionService := new(MockSessionService)
		storage := new(MockStorage)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(adminSession, nil)
		facultyRepo.On("UpsertFaculty", mock.Anything, mock.MatchedBy(func(faculty *models.Faculty) bool {
			return faculty.Email == "msa@bracu.ac.bd"
		})).Return(nil)
		storage.On("EnsureBucket", mock.Anything, "imports").Return(nil)
		storage.On("UploadObject", mock.Anything, "imports", mock.AnythingOfType("string"), constvars.MIMETextCSV, mock.Anything, mock.AnythingOfType("int64")).Return("etag", nil)

		payload := []byte("Matin Saad Abdullah,MSA@bracu.ac.bd\n")

		uc := NewImportUsecase(facultyRepo, sessionService, storage, "imports", zap.NewNop())
		result, err := uc.ImportFacultyCSV(context.Background(), "session-json", "faculty.csv", payload)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Upserted)
		facultyRepo.AssertExpectations(t)
	})

	t.Run("Rejects non-admin sessions", func(t *testing.T) {
		facultyRepo := new(MockFacultyRepository)
		sessionService := new(MockSessionService)
		storage := new(MockStorage)

		sessionService.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
			UserID: "user-1", Email: "rafi@g.bracu.ac.bd", Role: constvars.RoleStudent,
		}, nil)

		uc := NewImportUsecase(facultyRepo, sessionService, storage, "imports", zap.NewNop())
		_, err := uc.ImportFacultyCSV(context.Background(), "session-json", "faculty.csv", []byte("a,b\n"))

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 403, customErr.StatusCode)
		facultyRepo.AssertNotCalled(t, "UpsertFaculty", mock.Anything, mock.Anything)
		storage.AssertNotCalled(t, "UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
