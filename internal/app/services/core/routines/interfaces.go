package routines

import (
	"context"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/dto/responses"
)

type RoutineUsecase interface {
	SaveRoutine(ctx context.Context, sessionData string, request *requests.SaveRoutine) (*responses.Routine, error)
	ListRoutines(ctx context.Context, sessionData string) ([]responses.Routine, error)
	GetRoutineGrid(ctx context.Context, sessionData, routineID string) (*responses.ScheduleGrid, error)
	GetSharedRoutine(ctx context.Context, routineID string) (*responses.SharedRoutine, error)
	DeleteRoutine(ctx context.Context, sessionData, routineID string) error
	PreviewSelection(ctx context.Context, request *requests.PreviewSelection) (*responses.SelectionPreview, error)
	MergeRoutines(ctx context.Context, request *requests.MergeRoutines) (*responses.MergedGrid, error)
}

type RoutineRepository interface {
	CreateRoutine(ctx context.Context, routine *models.Routine) (routineID string, err error)
	FindByUserID(ctx context.Context, userID string) ([]models.Routine, error)
	FindByID(ctx context.Context, routineID string) (*models.Routine, error)
	DeleteByID(ctx context.Context, routineID string) error
}
