package catalog

import (
	"context"
	"net/http"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"
	"preplan-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	// Feed payloads run to tens of thousands of records, allow extra time.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := ctrl.CatalogUsecase.RefreshCatalog(ctx, sessionData)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogRefreshSuccess, result)
}

func (ctrl *CatalogController) ListSections(w http.ResponseWriter, r *http.Request) {
	courseQuery := r.URL.Query().Get("course")

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = 50
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.CatalogUsecase.ListSections(ctx, courseQuery, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.SectionsListSuccess, pagination, result)
}

func (ctrl *CatalogController) GetSectionByID(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.Atoi(chi.URLParam(r, "sectionID"))
	if err != nil || sectionID <= 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CatalogUsecase.GetSectionByID(ctx, sectionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionGetSuccess, result)
}
