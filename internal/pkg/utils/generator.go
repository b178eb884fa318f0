package utils

import (
	"fmt"
	"preplan-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return fmt.Sprintf("%s-%s", constvars.REQUEST_ID_PREFIX, uuid.NewString())
}
