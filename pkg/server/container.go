package server

import (
	"github.com/mynameberto/ProcessarMatriculaApp/internal/config"
	"github.com/mynameberto/ProcessarMatriculaApp/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	EnrollmentService services.EnrollmentService

	store    services.EnrollmentStore
	notifier services.ApplicantNotifier
}

// NewContainer creates a new dependency injection container. The store
// and notifier are the simulated implementations; swapping in real ones
// is a matter of constructing different collaborators here.
func NewContainer(cfg *config.Config) (*Container, error) {
	store := &services.SimulatedEnrollmentStore{Delay: cfg.Processing.PersistDelay}
	notifier := &services.SimulatedApplicantNotifier{Delay: cfg.Processing.NotifyDelay}

	enrollmentService := services.NewEnrollmentService(store, notifier, &services.EnrollmentServiceConfig{
		ProcessingDelay:     cfg.Processing.RequestDelay,
		ProcessingTimeLabel: cfg.Processing.ProcessingTimeLabel,
	})

	return &Container{
		Config:            cfg,
		EnrollmentService: enrollmentService,
		store:             store,
		notifier:          notifier,
	}, nil
}

// Close cleans up all resources. The simulated collaborators hold none,
// but callers should still defer this so real implementations can be
// dropped in later.
func (c *Container) Close() error {
	return nil
}
