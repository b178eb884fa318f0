package imports

import (
	"context"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/dto/responses"
)

type ImportUsecase interface {
	ImportFacultyCSV(ctx context.Context, sessionData, fileName string, payload []byte) (*responses.FacultyImport, error)
}

type FacultyRepository interface {
	UpsertFaculty(ctx context.Context, faculty *models.Faculty) error
	FindAll(ctx context.Context) ([]models.Faculty, error)
}
