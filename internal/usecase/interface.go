package usecase

import (
	"context"

	"banksynth/internal/domain"
)

// DatasetWriter exports one generated collection. The usecase layer depends
// on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_writer.go -source=interface.go DatasetWriter
type DatasetWriter interface {
	WriteCollection(ctx context.Context, collection domain.NamedCollection) error
}
