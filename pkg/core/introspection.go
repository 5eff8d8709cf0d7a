package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	ArtifactCount   int    `json:"artifact_count"`
	TagCount        int    `json:"tag_count"`
	EventBufferSize int    `json:"event_buffer_size"`
	StoreType       string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storeType := "unknown"
	if s.store != nil {
		storeType = "store"
		if comp, ok := s.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return ServiceState{
		ArtifactCount:   len(s.artifacts),
		TagCount:        len(s.tags),
		EventBufferSize: s.eventBufferSize,
		StoreType:       storeType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
