package utils

import (
	"arogya-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateTempFileName builds a unique name for a request-scoped upload copy.
func GenerateTempFileName(fileExtension string) string {
	return uuid.NewString() + fileExtension
}

// GenerateSubmissionID mirrors the timestamp-based submission identifiers of
// the intake archive, with a short random suffix to avoid same-second clashes.
func GenerateSubmissionID() string {
	return fmt.Sprintf("%s_%s", time.Now().Format("20060102150405"), uuid.NewString()[:8])
}

func GenerateObjectName(prefix, submissionID, fileExtension string) string {
	return fmt.Sprintf("%s/%s%s", prefix, submissionID, fileExtension)
}
