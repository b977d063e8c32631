package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mynameberto/ProcessarMatriculaApp/internal/models"
)

// SimulatedEnrollmentStore stands in for a real database. It sleeps for
// the configured delay, logs the write and always succeeds.
type SimulatedEnrollmentStore struct {
	Delay time.Duration
}

func (s *SimulatedEnrollmentStore) PersistEnrollment(ctx context.Context, resp *models.EnrollmentResponse) error {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	logrus.WithFields(logrus.Fields{
		"protocol":  resp.Protocol,
		"course_id": resp.CourseID,
	}).Info("Enrollment persisted (simulated)")

	return nil
}

// SimulatedApplicantNotifier stands in for a real mail transport. Like
// the store, it only delays and logs.
type SimulatedApplicantNotifier struct {
	Delay time.Duration
}

func (n *SimulatedApplicantNotifier) NotifyApplicant(ctx context.Context, email string, resp *models.EnrollmentResponse) error {
	if n.Delay > 0 {
		time.Sleep(n.Delay)
	}

	logrus.WithFields(logrus.Fields{
		"protocol":  resp.Protocol,
		"recipient": email,
		"next_step": resp.NextStep,
	}).Info("Applicant notified (simulated)")

	return nil
}
