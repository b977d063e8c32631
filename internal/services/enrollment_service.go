package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/mynameberto/ProcessarMatriculaApp/internal/models"
)

// coursePrices maps course IDs to their currency-formatted price.
// Unknown courses fall back to defaultCourseValue.
var coursePrices = map[string]string{
	"1": "R$ 850,00",
	"2": "R$ 750,00",
	"3": "R$ 680,00",
}

const defaultCourseValue = "R$ 0,00"

// Probabilities of the simulated document and payment checks passing
const (
	documentsValidProbability = 0.90
	paymentValidProbability   = 0.95
)

// EnrollmentServiceConfig holds tunables for the processing pipeline.
type EnrollmentServiceConfig struct {
	// ProcessingDelay is the artificial delay applied before the
	// simulated checks. Zero disables it; output shape is unaffected.
	ProcessingDelay time.Duration

	// ProcessingTimeLabel is echoed verbatim in the response.
	ProcessingTimeLabel string

	// RandFloat draws a uniform value in [0, 1). Defaults to the
	// shared math/rand source when nil.
	RandFloat func() float64

	// Now reads the wall clock. Defaults to time.Now when nil.
	Now func() time.Time
}

// enrollmentService implements EnrollmentService.
type enrollmentService struct {
	store     EnrollmentStore
	notifier  ApplicantNotifier
	delay     time.Duration
	timeLabel string
	randFloat func() float64
	now       func() time.Time
}

// NewEnrollmentService creates an enrollment service backed by the given
// store and notifier. Randomness and clock are injectable so tests can
// pin both; production callers leave them nil.
func NewEnrollmentService(store EnrollmentStore, notifier ApplicantNotifier, cfg *EnrollmentServiceConfig) EnrollmentService {
	if cfg == nil {
		cfg = &EnrollmentServiceConfig{}
	}

	randFloat := cfg.RandFloat
	if randFloat == nil {
		randFloat = rand.Float64
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	timeLabel := cfg.ProcessingTimeLabel
	if timeLabel == "" {
		timeLabel = "2 seconds"
	}

	return &enrollmentService{
		store:     store,
		notifier:  notifier,
		delay:     cfg.ProcessingDelay,
		timeLabel: timeLabel,
		randFloat: randFloat,
		now:       now,
	}
}

// ProcessEnrollment runs the full pipeline: validate, simulate the
// document and payment checks, generate the protocol, persist, notify
// and assemble the response.
func (s *enrollmentService) ProcessEnrollment(ctx context.Context, req *models.EnrollmentRequest) (*models.EnrollmentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	documentsValid := s.randFloat() < documentsValidProbability
	paymentValid := s.randFloat() < paymentValidProbability

	protocol := models.ProtocolPrefix + strconv.FormatInt(s.now().UnixMilli(), 10)

	nextStep := models.NextStepCorrections
	if documentsValid && paymentValid {
		nextStep = models.NextStepContract
	}

	courseID := strings.TrimSpace(req.CourseID)
	courseValue, ok := coursePrices[courseID]
	if !ok {
		courseValue = defaultCourseValue
	}

	resp := &models.EnrollmentResponse{
		Protocol:       protocol,
		Status:         models.StatusProcessed,
		DocumentsValid: documentsValid,
		PaymentValid:   paymentValid,
		NextStep:       nextStep,
		ProcessedAt:    s.now(),
		CourseID:       courseID,
		CourseValue:    courseValue,
		ProcessingTime: s.timeLabel,
	}

	if err := s.store.PersistEnrollment(ctx, resp); err != nil {
		return nil, fmt.Errorf("failed to persist enrollment %s: %w", protocol, err)
	}

	if err := s.notifier.NotifyApplicant(ctx, strings.TrimSpace(req.Email), resp); err != nil {
		return nil, fmt.Errorf("failed to notify applicant for enrollment %s: %w", protocol, err)
	}

	logrus.WithFields(logrus.Fields{
		"protocol":        protocol,
		"course_id":       courseID,
		"documents_valid": documentsValid,
		"payment_valid":   paymentValid,
		"next_step":       nextStep,
	}).Info("Enrollment processed")

	return resp, nil
}

// validate enforces the notblank tags on request structs. Field names in
// reported errors follow the JSON tags so callers see the wire names.
var validate = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Required fields must be non-empty after trimming whitespace
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// validateRequest checks the required fields after trimming whitespace.
func validateRequest(req *models.EnrollmentRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	missing := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		missing = append(missing, fieldError.Field())
	}

	return &ValidationError{MissingFields: missing}
}
