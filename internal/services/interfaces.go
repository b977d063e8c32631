package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mynameberto/ProcessarMatriculaApp/internal/models"
)

// EnrollmentService defines the interface for enrollment processing
type EnrollmentService interface {
	ProcessEnrollment(ctx context.Context, req *models.EnrollmentRequest) (*models.EnrollmentResponse, error)
}

// EnrollmentStore persists a processed enrollment. The current
// implementation is simulated; a real datastore can be swapped in
// without touching the processing pipeline.
type EnrollmentStore interface {
	PersistEnrollment(ctx context.Context, resp *models.EnrollmentResponse) error
}

// ApplicantNotifier sends the processing result to the applicant.
type ApplicantNotifier interface {
	NotifyApplicant(ctx context.Context, email string, resp *models.EnrollmentResponse) error
}

// ValidationError reports the required fields missing from a request.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: required fields missing: %s", strings.Join(e.MissingFields, ", "))
}
