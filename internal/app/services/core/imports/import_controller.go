package imports

import (
	"context"
	"io"
	"net/http"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"
	"preplan-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const maxImportSizeBytes = 8 << 20

type ImportController struct {
	Log           *zap.Logger
	ImportUsecase ImportUsecase
}

func NewImportController(logger *zap.Logger, importUsecase ImportUsecase) *ImportController {
	return &ImportController{
		Log:           logger,
		ImportUsecase: importUsecase,
	}
}

func (ctrl *ImportController) ImportFacultyCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSizeBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadCSV(err))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ImportUsecase.ImportFacultyCSV(ctx, sessionData, fileHeader.Filename, payload)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FacultyImportSuccess, result)
}
