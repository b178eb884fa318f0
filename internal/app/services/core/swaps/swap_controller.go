package swaps

import (
	"context"
	"net/http"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/dto/requests"
	"preplan-service/internal/pkg/exceptions"
	"preplan-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SwapController struct {
	Log         *zap.Logger
	SwapUsecase SwapUsecase
}

func NewSwapController(logger *zap.Logger, swapUsecase SwapUsecase) *SwapController {
	return &SwapController{
		Log:         logger,
		SwapUsecase: swapUsecase,
	}
}

func (ctrl *SwapController) CreateSwap(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSwap)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateSwapRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SwapUsecase.CreateSwap(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SwapCreatedSuccess, result)
}

func (ctrl *SwapController) ListSwaps(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.SwapUsecase.ListSwaps(ctx, status, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.SwapsListSuccess, pagination, result)
}

func (ctrl *SwapController) ExpressInterest(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	swapID := chi.URLParam(r, "swapID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SwapUsecase.ExpressInterest(ctx, sessionData, swapID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SwapInterestSuccess, result)
}

func (ctrl *SwapController) UpdateSwapStatus(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateSwapStatus)
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

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	swapID := chi.URLParam(r, "swapID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SwapUsecase.UpdateSwapStatus(ctx, sessionData, swapID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SwapUpdatedSuccess, result)
}

func (ctrl *SwapController) DeleteSwap(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	swapID := chi.URLParam(r, "swapID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.SwapUsecase.DeleteSwap(ctx, sessionData, swapID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SwapDeletedSuccess, nil)
}
