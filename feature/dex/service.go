package dex

import (
	"errors"
	"fmt"

	"pokemasdb/core/aggregate"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a name is not in the cache.
var ErrNotFound = errors.New("not found")

// CacheProvider hands out the currently published caches.
type CacheProvider interface {
	Caches() (*aggregate.Caches, error)
}

// Service resolves names against the published caches.
type Service struct {
	caches CacheProvider
	logger *zap.Logger
}

// NewService creates a new dex service.
func NewService(caches CacheProvider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{caches: caches, logger: logger}
}

// Lookup finds name in the cache of the given kind.
func (s *Service) Lookup(kind aggregate.Kind, name string) (any, error) {
	c, err := s.caches.Caches()
	if err != nil {
		return nil, err
	}
	v, ok := c.Lookup(kind, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	}
	return v, nil
}

// Names lists every key in the cache of the given kind.
func (s *Service) Names(kind aggregate.Kind) ([]string, error) {
	c, err := s.caches.Caches()
	if err != nil {
		return nil, err
	}
	return c.Keys(kind), nil
}
