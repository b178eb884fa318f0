package swaps

import (
	"context"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/app/models"
	"preplan-service/internal/app/services/core/catalog"
	"preplan-service/internal/app/services/shared/swapqueue"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/dto/responses"
	"preplan-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type swapUsecase struct {
	SwapRepository    SwapRepository
	SectionRepository catalog.SectionRepository
	SessionService    contracts.SessionService
	QueuePublisher    contracts.QueuePublisher
	Log               *zap.Logger
}

func NewSwapUsecase(
	swapMongoRepository SwapRepository,
	sectionMongoRepository catalog.SectionRepository,
	sessionService contracts.SessionService,
	queuePublisher contracts.QueuePublisher,
	logger *zap.Logger,
) SwapUsecase {
	return &swapUsecase{
		SwapRepository:    swapMongoRepository,
		SectionRepository: sectionMongoRepository,
		SessionService:    sessionService,
		QueuePublisher:    queuePublisher,
		Log:               logger,
	}
}

func (uc *swapUsecase) CreateSwap(ctx context.Context, sessionData string, request *requests.CreateSwap) (*responses.Swap, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	offerSection, err := uc.SectionRepository.FindByID(ctx, request.OfferSectionID)
	if err != nil {
		return nil, err
	}
	if offerSection == nil {
		return nil, exceptions.ErrSectionNotFound(nil)
	}

	now := time.Now()
	swap := &models.Swap{
		AuthorID:       session.UserID,
		AuthorEmail:    session.Email,
		OfferSectionID: request.OfferSectionID,
		AskSectionIDs:  request.AskSectionIDs,
		Note:           request.Note,
		Status:         constvars.SwapStatusPending,
		TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	swapID, err := uc.SwapRepository.CreateSwap(ctx, swap)
	if err != nil {
		return nil, err
	}
	swap.ID = swapID

	uc.publishEvent(ctx, swapqueue.SwapEvent{
		SwapID:         swapID,
		EventType:      swapqueue.EventSwapCreated,
		AuthorEmail:    swap.AuthorEmail,
		OfferSectionID: swap.OfferSectionID,
		Status:         swap.Status,
	})

	return uc.buildSwapResponse(ctx, swap), nil
}

func (uc *swapUsecase) ListSwaps(ctx context.Context, status string, page, pageSize int) ([]responses.Swap, int, error) {
	swaps, total, err := uc.SwapRepository.FindSwaps(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Swap, 0, len(swaps))
	for i := range swaps {
		result = append(result, *uc.buildSwapResponse(ctx, &swaps[i]))
	}
	return result, total, nil
}

func (uc *swapUsecase) ExpressInterest(ctx context.Context, sessionData, swapID string) (*responses.Swap, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	swap, err := uc.SwapRepository.FindByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		return nil, exceptions.ErrSwapNotFound(nil)
	}
	if swap.Status != constvars.SwapStatusPending {
		return nil, exceptions.ErrSwapAlreadyClosed(nil)
	}

	for _, email := range swap.InterestedUsers {
		if email == session.Email {
			return uc.buildSwapResponse(ctx, swap), nil
		}
	}

	swap.InterestedUsers = append(swap.InterestedUsers, session.Email)
	swap.UpdatedAt = time.Now()
	if err := uc.SwapRepository.UpdateSwap(ctx, swap); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, swapqueue.SwapEvent{
		SwapID:         swap.ID,
		EventType:      swapqueue.EventSwapInterest,
		AuthorEmail:    swap.AuthorEmail,
		ActorEmail:     session.Email,
		OfferSectionID: swap.OfferSectionID,
		Status:         swap.Status,
	})

	return uc.buildSwapResponse(ctx, swap), nil
}

func (uc *swapUsecase) UpdateSwapStatus(ctx context.Context, sessionData, swapID string, request *requests.UpdateSwapStatus) (*responses.Swap, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	swap, err := uc.SwapRepository.FindByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		return nil, exceptions.ErrSwapNotFound(nil)
	}
	if swap.AuthorID != session.UserID {
		return nil, exceptions.ErrNotAuthorized(nil)
	}
	if swap.Status != constvars.SwapStatusPending {
		return nil, exceptions.ErrSwapAlreadyClosed(nil)
	}

	swap.Status = request.Status
	swap.UpdatedAt = time.Now()
	if err := uc.SwapRepository.UpdateSwap(ctx, swap); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, swapqueue.SwapEvent{
		SwapID:         swap.ID,
		EventType:      swapqueue.EventSwapStatus,
		AuthorEmail:    swap.AuthorEmail,
		ActorEmail:     session.Email,
		OfferSectionID: swap.OfferSectionID,
		Status:         swap.Status,
	})

	return uc.buildSwapResponse(ctx, swap), nil
}

func (uc *swapUsecase) DeleteSwap(ctx context.Context, sessionData, swapID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	swap, err := uc.SwapRepository.FindByID(ctx, swapID)
	if err != nil {
		return err
	}
	if swap == nil {
		return exceptions.ErrSwapNotFound(nil)
	}
	if swap.AuthorID != session.UserID && session.Role != constvars.RoleAdmin {
		return exceptions.ErrNotAuthorized(nil)
	}

	if err := uc.SwapRepository.DeleteByID(ctx, swapID); err != nil {
		return err
	}

	uc.publishEvent(ctx, swapqueue.SwapEvent{
		SwapID:         swap.ID,
		EventType:      swapqueue.EventSwapDeleted,
		AuthorEmail:    swap.AuthorEmail,
		ActorEmail:     session.Email,
		OfferSectionID: swap.OfferSectionID,
		Status:         swap.Status,
	})

	return nil
}

// publishEvent logs and keeps going on failure, a lost notification must not
// fail the swap write that already committed.
func (uc *swapUsecase) publishEvent(ctx context.Context, event swapqueue.SwapEvent) {
	if err := uc.QueuePublisher.Publish(ctx, constvars.QueueSwapEvents, event); err != nil {
		uc.Log.Error("swapUsecase failed to publish swap event",
			zap.String(constvars.LoggingSwapIDKey, event.SwapID),
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
	}
}

func (uc *swapUsecase) buildSwapResponse(ctx context.Context, swap *models.Swap) *responses.Swap {
	response := &responses.Swap{
		SwapID:          swap.ID,
		AuthorEmail:     swap.AuthorEmail,
		OfferSectionID:  swap.OfferSectionID,
		AskSectionIDs:   swap.AskSectionIDs,
		Note:            swap.Note,
		Status:          swap.Status,
		InterestedUsers: swap.InterestedUsers,
		CreatedAt:       swap.CreatedAt.Format(time.RFC3339),
	}

	// Offer section details are a nicety, skip them if the catalog lookup fails.
	offerSection, err := uc.SectionRepository.FindByID(ctx, swap.OfferSectionID)
	if err == nil && offerSection != nil {
		section := buildOfferSection(*offerSection)
		response.OfferSection = &section
	}
	return response
}

func buildOfferSection(section models.CatalogSection) responses.Section {
	meetings := make([]responses.SectionMeeting, 0, len(section.Meetings))
	for _, meeting := range section.Meetings {
		meetings = append(meetings, responses.SectionMeeting{
			Day:      meeting.Day,
			Start:    meeting.Start,
			End:      meeting.End,
			Kind:     meeting.Kind,
			Location: meeting.Location,
		})
	}

	seatsLeft := section.Capacity - section.ConsumedSeats
	if seatsLeft < 0 {
		seatsLeft = 0
	}

	return responses.Section{
		SectionID:     section.SectionID,
		CourseCode:    section.CourseCode,
		SectionLabel:  section.SectionLabel,
		CreditValue:   section.CreditValue,
		Capacity:      section.Capacity,
		ConsumedSeats: section.ConsumedSeats,
		SeatsLeft:     seatsLeft,
		FacultyLabel:  section.FacultyLabel,
		RoomLabel:     section.RoomLabel,
		Prerequisite:  section.Prerequisite,
		Meetings:      meetings,
	}
}
