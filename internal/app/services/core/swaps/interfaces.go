package swaps

import (
	"context"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/dto/responses"
)

type SwapUsecase interface {
	CreateSwap(ctx context.Context, sessionData string, request *requests.CreateSwap) (*responses.Swap, error)
	ListSwaps(ctx context.Context, status string, page, pageSize int) ([]responses.Swap, int, error)
	ExpressInterest(ctx context.Context, sessionData, swapID string) (*responses.Swap, error)
	UpdateSwapStatus(ctx context.Context, sessionData, swapID string, request *requests.UpdateSwapStatus) (*responses.Swap, error)
	DeleteSwap(ctx context.Context, sessionData, swapID string) error
}

type SwapRepository interface {
	CreateSwap(ctx context.Context, swap *models.Swap) (swapID string, err error)
	FindSwaps(ctx context.Context, status string, page, pageSize int) ([]models.Swap, int, error)
	FindByID(ctx context.Context, swapID string) (*models.Swap, error)
	UpdateSwap(ctx context.Context, swap *models.Swap) error
	DeleteByID(ctx context.Context, swapID string) error
}
