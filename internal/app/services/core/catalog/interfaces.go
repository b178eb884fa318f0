package catalog

import (
	"context"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/dto/responses"
	"preplan-service/internal/pkg/schedule"
)

type CatalogUsecase interface {
	RefreshCatalog(ctx context.Context, sessionData string) (*responses.CatalogRefresh, error)
	ListSections(ctx context.Context, courseQuery string, page, pageSize int) ([]responses.Section, int, error)
	GetSectionByID(ctx context.Context, sectionID int) (*responses.Section, error)
}

type FeedClient interface {
	FetchFeed(ctx context.Context) ([]schedule.FeedRecord, error)
}

type SectionRepository interface {
	UpsertSections(ctx context.Context, sections []models.CatalogSection) error
	FindSections(ctx context.Context, courseQuery string, page, pageSize int) ([]models.CatalogSection, int, error)
	FindByID(ctx context.Context, sectionID int) (*models.CatalogSection, error)
	FindByIDs(ctx context.Context, sectionIDs []int) ([]models.CatalogSection, error)
}
