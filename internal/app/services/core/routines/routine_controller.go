package routines

import (
	"context"
	"net/http"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/exceptions"
	"preplan-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RoutineController struct {
	Log            *zap.Logger
	RoutineUsecase RoutineUsecase
}

func NewRoutineController(logger *zap.Logger, routineUsecase RoutineUsecase) *RoutineController {
	return &RoutineController{
		Log:            logger,
		RoutineUsecase: routineUsecase,
	}
}

func (ctrl *RoutineController) SaveRoutine(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveRoutine)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSaveRoutineRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RoutineUsecase.SaveRoutine(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RoutineSavedSuccess, result)
}

func (ctrl *RoutineController) ListRoutines(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RoutineUsecase.ListRoutines(ctx, sessionData)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoutinesListSuccess, result)
}

func (ctrl *RoutineController) GetRoutineGrid(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	routineID := chi.URLParam(r, "routineID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RoutineUsecase.GetRoutineGrid(ctx, sessionData, routineID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoutineGetSuccess, result)
}

func (ctrl *RoutineController) GetSharedRoutine(w http.ResponseWriter, r *http.Request) {
	routineID := chi.URLParam(r, "routineID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RoutineUsecase.GetSharedRoutine(ctx, routineID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoutineGetSuccess, result)
}

func (ctrl *RoutineController) DeleteRoutine(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	routineID := chi.URLParam(r, "routineID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.RoutineUsecase.DeleteRoutine(ctx, sessionData, routineID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoutineDeletedSuccess, nil)
}

func (ctrl *RoutineController) PreviewSelection(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PreviewSelection)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RoutineUsecase.PreviewSelection(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoutinePreviewSuccess, result)
}

func (ctrl *RoutineController) MergeRoutines(w http.ResponseWriter, r *http.Request) {
	request := new(requests.MergeRoutines)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeMergeRoutinesRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RoutineUsecase.MergeRoutines(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RoutinesMergedSuccess, result)
}
