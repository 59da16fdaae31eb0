package cachectl

import (
	"context"

	"pokemasdb/core/registry"

	"go.uber.org/zap"
)

// Lifecycle is the part of the registry the feature drives.
type Lifecycle interface {
	Status() registry.Status
	Reinitialize(ctx context.Context) error
	Submit(ctx context.Context) *registry.Task
	Invalidate()
}

// Service runs cache lifecycle operations.
type Service struct {
	registry Lifecycle
	logger   *zap.Logger
}

// NewService creates a new cache control service.
func NewService(reg Lifecycle, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{registry: reg, logger: logger}
}

// Status reports the registry state.
func (s *Service) Status() registry.Status {
	return s.registry.Status()
}

// Rebuild reinitializes the caches and waits for the result.
func (s *Service) Rebuild(ctx context.Context) error {
	return s.registry.Reinitialize(ctx)
}

// Submit reinitializes the caches in the background, logging the outcome.
func (s *Service) Submit(ctx context.Context) *registry.Task {
	task := s.registry.Submit(ctx)
	go func() {
		<-task.Done()
		if _, err := task.Poll(); err != nil {
			s.logger.Error("Background cache rebuild failed", zap.Error(err))
			return
		}
		s.logger.Info("Background cache rebuild finished", zap.Bool("shared", task.Shared()))
	}()
	return task
}

// Invalidate drops the published caches.
func (s *Service) Invalidate() {
	s.registry.Invalidate()
	s.logger.Info("Caches invalidated")
}
