package routines

import (
	"context"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/app/models"
	"preplan-service/internal/app/services/core/catalog"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/dto/responses"
	"preplan-service/internal/pkg/exceptions"
	"preplan-service/internal/pkg/schedule"
	"preplan-service/internal/pkg/utils"
	"time"
)

type routineUsecase struct {
	RoutineRepository RoutineRepository
	SectionRepository catalog.SectionRepository
	SessionService    contracts.SessionService
}

func NewRoutineUsecase(
	routineMongoRepository RoutineRepository,
	sectionMongoRepository catalog.SectionRepository,
	sessionService contracts.SessionService,
) RoutineUsecase {
	return &routineUsecase{
		RoutineRepository: routineMongoRepository,
		SectionRepository: sectionMongoRepository,
		SessionService:    sessionService,
	}
}

// resolveSections loads the requested sections, preserving request order.
// Ids absent from the catalog are dropped and counted instead of failing
// the whole request.
func (uc *routineUsecase) resolveSections(ctx context.Context, sectionIDs []int) ([]schedule.Section, int, error) {
	stored, err := uc.SectionRepository.FindByIDs(ctx, sectionIDs)
	if err != nil {
		return nil, 0, err
	}

	known := make([]schedule.Section, 0, len(stored))
	for _, section := range stored {
		known = append(known, section.ToScheduleSection())
	}

	resolved, missing := schedule.ResolveSectionIDs(known, sectionIDs)
	return resolved, missing, nil
}

// replaySelection rebuilds a selection set by re-running the add guards in
// order. Sections that no longer pass (duplicates, credit cap) are skipped.
func replaySelection(sections []schedule.Section) schedule.SelectionSet {
	var selection schedule.SelectionSet
	for _, section := range sections {
		next, rejection := selection.TryAdd(section)
		if rejection != nil {
			continue
		}
		selection = next
	}
	return selection
}

func (uc *routineUsecase) SaveRoutine(ctx context.Context, sessionData string, request *requests.SaveRoutine) (*responses.Routine, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	resolved, _, err := uc.resolveSections(ctx, request.SectionIDs)
	if err != nil {
		return nil, err
	}

	var selection schedule.SelectionSet
	for _, section := range resolved {
		next, rejection := selection.TryAdd(section)
		if rejection != nil {
			return nil, exceptions.ErrSelectionRejected(rejection.Message())
		}
		selection = next
	}

	encoded, err := utils.EncodeSectionIDs(request.SectionIDs)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	now := time.Now()
	routine := &models.Routine{
		UserID:     session.UserID,
		Email:      session.Email,
		Name:       request.Name,
		RoutineStr: encoded,
		TimeModel:  models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	routineID, err := uc.RoutineRepository.CreateRoutine(ctx, routine)
	if err != nil {
		return nil, err
	}

	return &responses.Routine{
		RoutineID:    routineID,
		Name:         routine.Name,
		SectionIDs:   request.SectionIDs,
		Encoded:      encoded,
		TotalCredits: selection.TotalCredits(),
		CreatedAt:    now.Format(time.RFC3339),
	}, nil
}

func (uc *routineUsecase) ListRoutines(ctx context.Context, sessionData string) ([]responses.Routine, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	routines, err := uc.RoutineRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Routine, 0, len(routines))
	for _, routine := range routines {
		sectionIDs, err := utils.DecodeSectionIDs(routine.RoutineStr)
		if err != nil {
			return nil, exceptions.ErrCannotDecodeRoutine(err)
		}

		resolved, _, err := uc.resolveSections(ctx, sectionIDs)
		if err != nil {
			return nil, err
		}

		var totalCredits float64
		for _, section := range resolved {
			totalCredits += section.CreditValue
		}

		result = append(result, responses.Routine{
			RoutineID:    routine.ID,
			Name:         routine.Name,
			SectionIDs:   sectionIDs,
			Encoded:      routine.RoutineStr,
			TotalCredits: totalCredits,
			CreatedAt:    routine.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    routine.UpdatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (uc *routineUsecase) GetRoutineGrid(ctx context.Context, sessionData, routineID string) (*responses.ScheduleGrid, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	routine, err := uc.RoutineRepository.FindByID(ctx, routineID)
	if err != nil {
		return nil, err
	}
	if routine == nil || routine.UserID != session.UserID {
		return nil, exceptions.ErrRoutineNotFound(nil)
	}

	sectionIDs, err := utils.DecodeSectionIDs(routine.RoutineStr)
	if err != nil {
		return nil, exceptions.ErrCannotDecodeRoutine(err)
	}

	resolved, missing, err := uc.resolveSections(ctx, sectionIDs)
	if err != nil {
		return nil, err
	}

	grid := buildScheduleGrid(resolved, missing)
	return &grid, nil
}

// GetSharedRoutine backs the shared-link view. Anyone holding the routine
// id can render it; the response carries no owner account details.
func (uc *routineUsecase) GetSharedRoutine(ctx context.Context, routineID string) (*responses.SharedRoutine, error) {
	routine, err := uc.RoutineRepository.FindByID(ctx, routineID)
	if err != nil {
		return nil, err
	}
	if routine == nil {
		return nil, exceptions.ErrRoutineNotFound(nil)
	}

	sectionIDs, err := utils.DecodeSectionIDs(routine.RoutineStr)
	if err != nil {
		return nil, exceptions.ErrCannotDecodeRoutine(err)
	}

	resolved, missing, err := uc.resolveSections(ctx, sectionIDs)
	if err != nil {
		return nil, err
	}

	return &responses.SharedRoutine{
		RoutineID:  routine.ID,
		Name:       routine.Name,
		SectionIDs: sectionIDs,
		Encoded:    routine.RoutineStr,
		Grid:       buildScheduleGrid(resolved, missing),
	}, nil
}

func (uc *routineUsecase) DeleteRoutine(ctx context.Context, sessionData, routineID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	routine, err := uc.RoutineRepository.FindByID(ctx, routineID)
	if err != nil {
		return err
	}
	if routine == nil || routine.UserID != session.UserID {
		return exceptions.ErrRoutineNotFound(nil)
	}

	return uc.RoutineRepository.DeleteByID(ctx, routineID)
}

func (uc *routineUsecase) PreviewSelection(ctx context.Context, request *requests.PreviewSelection) (*responses.SelectionPreview, error) {
	resolved, _, err := uc.resolveSections(ctx, request.SectionIDs)
	if err != nil {
		return nil, err
	}

	selection := replaySelection(resolved)

	response := &responses.SelectionPreview{Accepted: true}

	if request.AddSectionID != 0 {
		candidates, missing, err := uc.resolveSections(ctx, []int{request.AddSectionID})
		if err != nil {
			return nil, err
		}
		if missing > 0 {
			return nil, exceptions.ErrSectionNotFound(nil)
		}

		next, rejection := selection.TryAdd(candidates[0])
		if rejection != nil {
			response.Accepted = false
			response.RejectionReason = string(rejection.Reason)
			response.RejectionDetail = rejection.Message()
		} else {
			selection = next
		}
	}

	sections := selection.Sections()
	sectionIDs := make([]int, 0, len(sections))
	for _, section := range sections {
		sectionIDs = append(sectionIDs, section.SectionID)
	}

	grid := buildScheduleGrid(sections, 0)
	response.SectionIDs = sectionIDs
	response.TotalCredits = selection.TotalCredits()
	response.Grid = &grid
	return response, nil
}

func (uc *routineUsecase) MergeRoutines(ctx context.Context, request *requests.MergeRoutines) (*responses.MergedGrid, error) {
	if len(request.Contributors) > schedule.MaxContributors {
		return nil, exceptions.ErrTooManyRoutines(schedule.ErrTooManyContributors)
	}

	contributions := make([]schedule.Contribution, 0, len(request.Contributors))
	totalMissing := 0

	for _, contributor := range request.Contributors {
		sectionIDs := contributor.SectionIDs
		if contributor.Encoded != "" {
			decoded, err := utils.DecodeSectionIDs(contributor.Encoded)
			if err != nil {
				return nil, exceptions.ErrCannotDecodeRoutine(err)
			}
			sectionIDs = decoded
		}

		resolved, missing, err := uc.resolveSections(ctx, sectionIDs)
		if err != nil {
			return nil, err
		}
		totalMissing += missing

		contributions = append(contributions, schedule.Contribution{
			OwnerLabel: contributor.Label,
			OwnerColor: contributor.Color,
			Sections:   resolved,
		})
	}

	view, err := schedule.BuildMergedView(contributions)
	if err != nil {
		return nil, exceptions.ErrTooManyRoutines(err)
	}

	summaries := make([]responses.MergeContributorSummary, 0, len(view.Contributions))
	for _, contribution := range view.Contributions {
		var credits float64
		for _, section := range contribution.Sections {
			credits += section.CreditValue
		}
		summaries = append(summaries, responses.MergeContributorSummary{
			Label:        contribution.OwnerLabel,
			Color:        contribution.OwnerColor,
			SectionCount: len(contribution.Sections),
			TotalCredits: credits,
		})
	}

	grid := buildMergedScheduleGrid(view, totalMissing)
	return &responses.MergedGrid{
		Contributors:    summaries,
		Grid:            grid,
		MissingSections: totalMissing,
	}, nil
}
