package catalog

import (
	"context"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/dto/responses"
	"preplan-service/internal/pkg/exceptions"
	"preplan-service/internal/pkg/schedule"
	"time"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	FeedClient        FeedClient
	SectionRepository SectionRepository
	SessionService    contracts.SessionService
	Log               *zap.Logger
}

func NewCatalogUsecase(
	feedClient FeedClient,
	sectionMongoRepository SectionRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) CatalogUsecase {
	return &catalogUsecase{
		FeedClient:        feedClient,
		SectionRepository: sectionMongoRepository,
		SessionService:    sessionService,
		Log:               logger,
	}
}

func (uc *catalogUsecase) RefreshCatalog(ctx context.Context, sessionData string) (*responses.CatalogRefresh, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	records, err := uc.FeedClient.FetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sections := make([]models.CatalogSection, 0, len(records))
	var skipped int
	var warningMessages []string

	for _, record := range records {
		section, warnings, err := schedule.NormalizeRecord(record)
		if err != nil {
			skipped++
			uc.Log.Warn("catalogUsecase.RefreshCatalog skipping malformed record",
				zap.Int(constvars.LoggingSectionIDKey, record.SectionID),
				zap.Error(err),
			)
			continue
		}
		for _, warning := range warnings {
			warningMessages = append(warningMessages, warning.String())
			uc.Log.Warn("catalogUsecase.RefreshCatalog dropping meeting",
				zap.Int(constvars.LoggingSectionIDKey, warning.SectionID),
				zap.String("reason", warning.Reason),
			)
		}
		stored := models.NewCatalogSection(section)
		stored.CreatedAt = now
		stored.UpdatedAt = now
		sections = append(sections, stored)
	}

	if err := uc.SectionRepository.UpsertSections(ctx, sections); err != nil {
		return nil, err
	}

	return &responses.CatalogRefresh{
		TotalRecords:    len(records),
		StoredSections:  len(sections),
		SkippedRecords:  skipped,
		MeetingWarnings: warningMessages,
		FetchedAt:       now.Format(time.RFC3339),
	}, nil
}

func (uc *catalogUsecase) ListSections(ctx context.Context, courseQuery string, page, pageSize int) ([]responses.Section, int, error) {
	sections, total, err := uc.SectionRepository.FindSections(ctx, courseQuery, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Section, 0, len(sections))
	for _, section := range sections {
		result = append(result, buildSectionResponse(section))
	}
	return result, total, nil
}

func (uc *catalogUsecase) GetSectionByID(ctx context.Context, sectionID int) (*responses.Section, error) {
	section, err := uc.SectionRepository.FindByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, exceptions.ErrSectionNotFound(nil)
	}

	response := buildSectionResponse(*section)
	return &response, nil
}

func buildSectionResponse(section models.CatalogSection) responses.Section {
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
