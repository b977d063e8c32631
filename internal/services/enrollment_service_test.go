package services

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/mynameberto/ProcessarMatriculaApp/internal/models"
)

// recordingStore captures persisted responses
type recordingStore struct {
	persisted []*models.EnrollmentResponse
}

func (s *recordingStore) PersistEnrollment(ctx context.Context, resp *models.EnrollmentResponse) error {
	s.persisted = append(s.persisted, resp)
	return nil
}

// recordingNotifier captures notified recipients
type recordingNotifier struct {
	recipients []string
}

func (n *recordingNotifier) NotifyApplicant(ctx context.Context, email string, resp *models.EnrollmentResponse) error {
	n.recipients = append(n.recipients, email)
	return nil
}

// sequenceRand returns queued values, then repeats the last one
func sequenceRand(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// tickingClock advances one millisecond per read
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func newTestService(store EnrollmentStore, notifier ApplicantNotifier, cfg *EnrollmentServiceConfig) EnrollmentService {
	if store == nil {
		store = &recordingStore{}
	}
	if notifier == nil {
		notifier = &recordingNotifier{}
	}
	return NewEnrollmentService(store, notifier, cfg)
}

func TestProcessEnrollmentSuccess(t *testing.T) {
	store := &recordingStore{}
	notifier := &recordingNotifier{}
	now := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC) // epoch millis 1700000000000

	svc := newTestService(store, notifier, &EnrollmentServiceConfig{
		RandFloat: sequenceRand(0.1, 0.1),
		Now:       fixedClock(now),
	})

	resp, err := svc.ProcessEnrollment(context.Background(), &models.EnrollmentRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		CourseID: "2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Protocol != "PUCPR-1700000000000" {
		t.Errorf("expected protocol PUCPR-1700000000000, got %s", resp.Protocol)
	}
	if resp.Status != models.StatusProcessed {
		t.Errorf("expected status %q, got %q", models.StatusProcessed, resp.Status)
	}
	if resp.CourseID != "2" {
		t.Errorf("expected course ID 2, got %s", resp.CourseID)
	}
	if resp.CourseValue != "R$ 750,00" {
		t.Errorf("expected course value R$ 750,00, got %s", resp.CourseValue)
	}
	if !resp.DocumentsValid || !resp.PaymentValid {
		t.Errorf("expected both flags true with low draws, got docs=%v payment=%v", resp.DocumentsValid, resp.PaymentValid)
	}
	if resp.NextStep != models.NextStepContract {
		t.Errorf("expected next step %q, got %q", models.NextStepContract, resp.NextStep)
	}
	if !resp.ProcessedAt.Equal(now) {
		t.Errorf("expected processed at %v, got %v", now, resp.ProcessedAt)
	}
	if resp.ProcessingTime == "" {
		t.Error("expected a processing time label")
	}

	if len(store.persisted) != 1 {
		t.Fatalf("expected 1 persisted enrollment, got %d", len(store.persisted))
	}
	if store.persisted[0].Protocol != resp.Protocol {
		t.Errorf("persisted protocol %s does not match response %s", store.persisted[0].Protocol, resp.Protocol)
	}
	if len(notifier.recipients) != 1 || notifier.recipients[0] != "ana@x.com" {
		t.Errorf("expected one notification to ana@x.com, got %v", notifier.recipients)
	}
}

func TestProcessEnrollmentValidation(t *testing.T) {
	tests := []struct {
		name        string
		req         models.EnrollmentRequest
		wantMissing []string
	}{
		{
			name:        "empty name",
			req:         models.EnrollmentRequest{Name: "", Email: "a@b.com", CourseID: "1"},
			wantMissing: []string{"Nome"},
		},
		{
			name:        "whitespace-only email",
			req:         models.EnrollmentRequest{Name: "Ana", Email: "   ", CourseID: "1"},
			wantMissing: []string{"Email"},
		},
		{
			name:        "missing course",
			req:         models.EnrollmentRequest{Name: "Ana", Email: "a@b.com", CourseID: "\t"},
			wantMissing: []string{"Curso"},
		},
		{
			name:        "all fields blank",
			req:         models.EnrollmentRequest{},
			wantMissing: []string{"Nome", "Email", "Curso"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingStore{}
			svc := newTestService(store, nil, nil)

			resp, err := svc.ProcessEnrollment(context.Background(), &tt.req)
			if resp != nil {
				t.Fatalf("expected nil response, got %+v", resp)
			}

			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}

			if len(vErr.MissingFields) != len(tt.wantMissing) {
				t.Fatalf("expected missing fields %v, got %v", tt.wantMissing, vErr.MissingFields)
			}
			for i, field := range tt.wantMissing {
				if vErr.MissingFields[i] != field {
					t.Errorf("expected missing field %q at %d, got %q", field, i, vErr.MissingFields[i])
				}
			}

			if len(store.persisted) != 0 {
				t.Errorf("invalid request must not be persisted, got %d writes", len(store.persisted))
			}
		})
	}
}

func TestCoursePriceLookup(t *testing.T) {
	tests := []struct {
		courseID string
		want     string
	}{
		{"1", "R$ 850,00"},
		{"2", "R$ 750,00"},
		{"3", "R$ 680,00"},
		{"4", "R$ 0,00"},
		{"abc", "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.courseID, func(t *testing.T) {
			svc := newTestService(nil, nil, &EnrollmentServiceConfig{
				RandFloat: sequenceRand(0.5),
				Now:       fixedClock(time.Now()),
			})

			resp, err := svc.ProcessEnrollment(context.Background(), &models.EnrollmentRequest{
				Name:     "Ana",
				Email:    "a@b.com",
				CourseID: tt.courseID,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.CourseValue != tt.want {
				t.Errorf("course %q: expected value %q, got %q", tt.courseID, tt.want, resp.CourseValue)
			}
			if resp.CourseID != tt.courseID {
				t.Errorf("course %q not echoed, got %q", tt.courseID, resp.CourseID)
			}
		})
	}
}

func TestNextStepFollowsValidityFlags(t *testing.T) {
	tests := []struct {
		name     string
		draws    []float64
		docs     bool
		payment  bool
		nextStep string
	}{
		{"both pass", []float64{0.5, 0.5}, true, true, models.NextStepContract},
		{"documents fail", []float64{0.95, 0.5}, false, true, models.NextStepCorrections},
		{"payment fails", []float64{0.5, 0.97}, true, false, models.NextStepCorrections},
		{"both fail", []float64{0.95, 0.97}, false, false, models.NextStepCorrections},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(nil, nil, &EnrollmentServiceConfig{
				RandFloat: sequenceRand(tt.draws...),
			})

			resp, err := svc.ProcessEnrollment(context.Background(), &models.EnrollmentRequest{
				Name:     "Ana",
				Email:    "a@b.com",
				CourseID: "1",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if resp.DocumentsValid != tt.docs {
				t.Errorf("expected documents valid %v, got %v", tt.docs, resp.DocumentsValid)
			}
			if resp.PaymentValid != tt.payment {
				t.Errorf("expected payment valid %v, got %v", tt.payment, resp.PaymentValid)
			}
			if resp.NextStep != tt.nextStep {
				t.Errorf("expected next step %q, got %q", tt.nextStep, resp.NextStep)
			}
		})
	}
}

func TestValidityRatesConverge(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	svc := newTestService(nil, nil, &EnrollmentServiceConfig{
		RandFloat: rng.Float64,
	})

	const trials = 2000
	var docsTrue, paymentTrue int

	for i := 0; i < trials; i++ {
		resp, err := svc.ProcessEnrollment(context.Background(), &models.EnrollmentRequest{
			Name:     "Ana",
			Email:    "a@b.com",
			CourseID: "1",
		})
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", i, err)
		}
		if resp.DocumentsValid {
			docsTrue++
		}
		if resp.PaymentValid {
			paymentTrue++
		}
	}

	docsRate := float64(docsTrue) / trials
	paymentRate := float64(paymentTrue) / trials

	if docsRate < 0.85 || docsRate > 0.95 {
		t.Errorf("documents valid rate %.3f outside [0.85, 0.95]", docsRate)
	}
	if paymentRate < 0.90 || paymentRate > 1.0 {
		t.Errorf("payment valid rate %.3f outside [0.90, 1.00]", paymentRate)
	}
}

func TestNonDeterminismBoundedToProtocolAndFlags(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	svc := newTestService(nil, nil, &EnrollmentServiceConfig{
		RandFloat: rng.Float64,
		Now:       tickingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	})

	req := &models.EnrollmentRequest{Name: "Ana", Email: "a@b.com", CourseID: "3"}

	first, err := svc.ProcessEnrollment(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ProcessEnrollment(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Protocol == second.Protocol {
		t.Errorf("identical inputs must still yield distinct protocols, both %s", first.Protocol)
	}

	// Everything except the protocol, timestamps and the random flags is stable
	if first.CourseID != second.CourseID || first.CourseValue != second.CourseValue {
		t.Errorf("echoed course fields changed between calls: %+v vs %+v", first, second)
	}
	if first.Status != second.Status || first.ProcessingTime != second.ProcessingTime {
		t.Errorf("fixed labels changed between calls: %+v vs %+v", first, second)
	}
}

func TestProtocolFormat(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	resp, err := svc.ProcessEnrollment(context.Background(), &models.EnrollmentRequest{
		Name:     "Ana",
		Email:    "a@b.com",
		CourseID: "1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matched, err := regexp.MatchString(`^PUCPR-\d{13,}$`, resp.Protocol)
	if err != nil {
		t.Fatalf("bad pattern: %v", err)
	}
	if !matched {
		t.Errorf("protocol %q does not match PUCPR-<epoch millis>", resp.Protocol)
	}
}
