package imports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/app/models"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/dto/responses"
	"preplan-service/internal/pkg/exceptions"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(constvars.RegexEmail)

type importUsecase struct {
	FacultyRepository FacultyRepository
	SessionService    contracts.SessionService
	Storage           contracts.Storage
	BucketName        string
	Log               *zap.Logger
}

func NewImportUsecase(
	facultyMongoRepository FacultyRepository,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	bucketName string,
	logger *zap.Logger,
) ImportUsecase {
	return &importUsecase{
		FacultyRepository: facultyMongoRepository,
		SessionService:    sessionService,
		Storage:           minioStorage,
		BucketName:        bucketName,
		Log:               logger,
	}
}

// ImportFacultyCSV upserts faculty rows keyed by email. Expected columns:
// facultyName,email,imgURL with an optional header row. The raw file is
// archived to object storage after a successful import.
func (uc *importUsecase) ImportFacultyCSV(ctx context.Context, sessionData, fileName string, payload []byte) (*responses.FacultyImport, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	reader := csv.NewReader(bytes.NewReader(payload))
	reader.FieldsPerRecord = -1

	now := time.Now()
	var totalRows, upserted, skipped int

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, exceptions.ErrCannotReadCSV(err)
		}
		totalRows++

		if len(row) < 2 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		email := strings.ToLower(strings.TrimSpace(row[1]))
		imageURL := ""
		if len(row) > 2 {
			imageURL = strings.TrimSpace(row[2])
		}

		// Header rows and rows without a usable email are skipped.
		if name == "" || !emailPattern.MatchString(email) {
			skipped++
			continue
		}

		faculty := &models.Faculty{
			Name:      name,
			Email:     email,
			ImageURL:  imageURL,
			TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		if err := uc.FacultyRepository.UpsertFaculty(ctx, faculty); err != nil {
			return nil, err
		}
		upserted++
	}

	archiveKey := fmt.Sprintf("faculty/%s-%s", now.Format("20060102-150405"), fileName)
	if err := uc.Storage.EnsureBucket(ctx, uc.BucketName); err != nil {
		return nil, err
	}
	if _, err := uc.Storage.UploadObject(ctx, uc.BucketName, archiveKey, constvars.MIMETextCSV, bytes.NewReader(payload), int64(len(payload))); err != nil {
		return nil, err
	}

	uc.Log.Info("importUsecase.ImportFacultyCSV finished",
		zap.String(constvars.LoggingEmailKey, session.Email),
		zap.String(constvars.LoggingObjectKey, archiveKey),
		zap.Int("upserted", upserted),
		zap.Int("skipped", skipped),
	)

	return &responses.FacultyImport{
		TotalRows:   totalRows,
		Upserted:    upserted,
		SkippedRows: skipped,
		ArchiveKey:  archiveKey,
	}, nil
}
